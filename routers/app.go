package routers

import (
	"classroom/config"
	healthController "classroom/controllers/health"
	"classroom/middleware"
	"classroom/routers/authRoutes"
	"classroom/routers/courseRoutes"
	"classroom/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the Fiber app with the full route table. Every handler error,
// including recovered panics, goes through middleware.ErrorHandler.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "classroom",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	allowOrigins := "*"
	if config.AppConfig != nil && config.AppConfig.AllowOrigins != "" {
		allowOrigins = config.AppConfig.AllowOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestid}\n",
	}))

	app.Get("/healthz", healthController.Healthz)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	return app
}
