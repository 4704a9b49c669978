package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/wellnesshub/wellness-backend/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth", limiter.New(limiter.Config{
		Max: 30,
	}))

	auth.Post("/register", controllers.Register)
	auth.Post("/verify-otp", controllers.VerifyOTP)
	auth.Post("/resend-otp", controllers.ResendOTP)
	auth.Post("/login", controllers.Login)
	auth.Post("/forgot-password", controllers.ForgotPassword)

	// Legacy link-based verification for tokens issued before the OTP flow
	auth.Get("/verify", controllers.VerifyEmail)
}
