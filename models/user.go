package models

import (
	"strings"
	"time"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// Verification lifecycle of a practitioner account. Email verification is
// tracked separately on the user record.
const (
	StatusPending            = "pending"
	StatusPendingAdminReview = "pending_admin_approval"
	StatusApproved           = "approved"
	StatusRejected           = "rejected"
	StatusReuploadRequested  = "reupload_requested"
)

type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name"`
	Email              string    `json:"email" gorm:"unique"`
	Password           string    `json:"password,omitempty"`
	Role               string    `json:"role"`
	Specialization     string    `json:"specialization"`
	City               string    `json:"city"`
	Country            string    `json:"country"`
	DegreeFile         string    `json:"degree_file"`
	VerificationStatus string    `json:"verification_status"`
	Verified           bool      `json:"verified"`
	EmailVerified      bool      `json:"email_verified"`
	VerificationToken  string    `json:"-"`
	OTP                string    `json:"-"`
	OTPExpiresAt       time.Time `json:"-"`
	AdminComment       string    `json:"admin_comment,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsVerified is the legacy derived view kept for older consumers: a user
// counts as verified once the status reached approved or the flag was set
// directly. Rows written by earlier deployments may carry uppercase
// statuses, so the comparison is case-insensitive.
func (u *User) IsVerified() bool {
	return strings.EqualFold(u.VerificationStatus, StatusApproved) || u.Verified
}

// HasRole compares roles case-insensitively.
func (u *User) HasRole(role string) bool {
	return strings.EqualFold(u.Role, role)
}

// OTPExpired reports whether the stored OTP can no longer be used.
func (u *User) OTPExpired(now time.Time) bool {
	return u.OTPExpiresAt.IsZero() || u.OTPExpiresAt.Before(now)
}
