package authRoutes

import (
	authControllers "classroom/controllers/auth"
	"classroom/middleware"
	authValidators "classroom/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.RequireAuthenticated, authControllers.Logout)

	app.Get("/test-token", middleware.RequireAuthenticated, authControllers.TestToken)
}
