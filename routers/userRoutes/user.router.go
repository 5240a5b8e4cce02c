package userRoutes

import (
	userController "classroom/controllers/userControllers"
	"classroom/middleware"
	"classroom/models"
	userValidator "classroom/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/", middleware.RequireRole(models.RoleInstructor), userController.GetAllUsers)
	userGroup.Get("/:id", middleware.RequireAuthenticated, userValidator.UserID(), userController.GetUser)
	userGroup.Put("/:id", middleware.RequireAuthenticated, userValidator.UpdateUser(), userController.UpdateUser)
	userGroup.Delete("/:id", middleware.RequireRole(models.RoleInstructor), userValidator.UserID(), userController.DeleteUser)
}
