package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// GenerateOTP returns a 6-digit numeric code.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// GenerateTempPassword returns a short random credential for the
// forgot-password flow.
func GenerateTempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// GenerateVerificationToken returns an opaque token for the legacy
// link-based email verification.
func GenerateVerificationToken() string {
	return uuid.NewString()
}
