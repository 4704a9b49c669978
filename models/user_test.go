package models

import (
	"testing"
	"time"
)

func TestIsVerified(t *testing.T) {
	cases := []struct {
		name string
		user User
		want bool
	}{
		{"approved status", User{VerificationStatus: StatusApproved}, true},
		{"approved uppercase legacy row", User{VerificationStatus: "APPROVED"}, true},
		{"verified flag only", User{VerificationStatus: StatusRejected, Verified: true}, true},
		{"pending", User{VerificationStatus: StatusPending}, false},
		{"pending admin approval", User{VerificationStatus: StatusPendingAdminReview}, false},
		{"rejected", User{VerificationStatus: StatusRejected}, false},
		{"empty", User{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.IsVerified(); got != tc.want {
				t.Errorf("IsVerified() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasRole(t *testing.T) {
	u := User{Role: RoleProvider}
	if !u.HasRole("provider") {
		t.Error("expected provider role to match")
	}
	if !u.HasRole("PROVIDER") {
		t.Error("expected role comparison to be case-insensitive")
	}
	if u.HasRole(RoleAdmin) {
		t.Error("did not expect admin role to match")
	}
}

func TestOTPExpired(t *testing.T) {
	now := time.Now()

	u := User{OTPExpiresAt: now.Add(5 * time.Minute)}
	if u.OTPExpired(now) {
		t.Error("unexpired OTP reported as expired")
	}

	u.OTPExpiresAt = now.Add(-time.Minute)
	if !u.OTPExpired(now) {
		t.Error("expired OTP reported as valid")
	}

	u.OTPExpiresAt = time.Time{}
	if !u.OTPExpired(now) {
		t.Error("zero expiry should count as expired")
	}
}
