package main

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/wellnesshub/wellness-backend/cron"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/redis"
	"github.com/wellnesshub/wellness-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.Bootstrap()
	redis.InitRedis()
	cron.StartCronJobs()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Wellness Hub API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupDegreeRoutes(app)

	app.Listen(":8000")
}
