package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

const maxSendAttempts = 3

// SendEmail delivers a plaintext message over SMTP. The dial-and-send is
// retried with an incremental backoff; exhausting the attempts returns the
// last error and is the terminal outcome, callers only log it.
func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		lastErr = d.DialAndSend(m)
		if lastErr == nil {
			return nil
		}
		log.Printf("Email attempt %d/%d to %s failed: %v", attempt, maxSendAttempts, to, lastErr)
		if attempt < maxSendAttempts {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
	}
	log.Printf("❌ Giving up on email to %s: %v", to, lastErr)
	return lastErr
}

// SendOTPEmail delivers the registration OTP.
func SendOTPEmail(to, otp string) error {
	body := fmt.Sprintf("Welcome to Wellness Hub!\n\n"+
		"Your OTP code for registration is: %s\n\n"+
		"This code will expire in 10 minutes.\n"+
		"If you did not request this, please ignore this email.", otp)
	return SendEmail(to, "Wellness Hub - Your OTP Verification Code", body)
}

// SendApprovalEmail tells a practitioner their account was approved.
func SendApprovalEmail(to string) error {
	body := fmt.Sprintf("Congratulations!\n\n"+
		"Your Wellness Hub account has been approved by the admin. "+
		"You can now access all professional features.\n\n"+
		"Login here: %s/login", baseURL())
	return SendEmail(to, "Wellness Hub - Account Approved", body)
}

// SendRejectionEmail tells a practitioner their application was rejected.
func SendRejectionEmail(to string) error {
	body := "Hello,\n\n" +
		"We regret to inform you that your application for a Wellness Hub " +
		"professional account has been rejected at this time.\n" +
		"If you believe this is an error, please contact support."
	return SendEmail(to, "Wellness Hub - Account Application Update", body)
}

// SendForgotPasswordEmail delivers the temporary credential.
func SendForgotPasswordEmail(to, newPassword string) error {
	body := fmt.Sprintf("Hello,\n\n"+
		"Your password has been reset as requested.\n"+
		"Temporary Password: %s\n\n"+
		"Please login and change your password as soon as possible for security reasons.\n"+
		"Login here: %s/login", newPassword, baseURL())
	return SendEmail(to, "Wellness Hub - Password Reset", body)
}

// SendVerificationEmail delivers the legacy link-based verification mail.
func SendVerificationEmail(to, token string) error {
	body := fmt.Sprintf("Welcome to Wellness Hub!\n\n"+
		"Please verify your email by clicking the link below:\n"+
		"%s/verify?token=%s\n\n"+
		"If you did not create an account, please ignore this email.", baseURL(), token)
	return SendEmail(to, "Wellness Hub - Email Verification", body)
}

func baseURL() string {
	if url := os.Getenv("APP_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}
