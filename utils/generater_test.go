package utils

import (
	"strings"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("expected 6-digit OTP, got %q", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("OTP contains non-digit: %q", otp)
			}
		}
	}
}

func TestGenerateTempPassword(t *testing.T) {
	p := GenerateTempPassword()
	if len(p) != 8 {
		t.Fatalf("expected 8-char temp password, got %q", p)
	}
	if strings.Contains(p, "-") {
		t.Fatalf("temp password should not contain hyphens: %q", p)
	}
}

func TestGenerateVerificationToken(t *testing.T) {
	a := GenerateVerificationToken()
	b := GenerateVerificationToken()
	if a == "" || b == "" {
		t.Fatal("expected non-empty tokens")
	}
	if a == b {
		t.Fatal("expected tokens to be unique")
	}
}
