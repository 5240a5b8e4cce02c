package authValidator

import (
	"classroom/middleware"
	"classroom/models"
	"classroom/utils"
	"classroom/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalRegister = "validatedRegister"
	LocalLogin    = "validatedLogin"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationError("Invalid input data")
		}

		// Role is checked first so the caller learns which values are allowed
		if !models.IsValidRole(reqData.Role) {
			return middleware.ValidationError("Invalid role. Must be 'student' or 'instructor'")
		}

		reqData.Email = utils.NormalizeEmail(reqData.Email)
		if err := validators.Check(reqData); err != nil {
			return err
		}

		c.Locals(LocalRegister, reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		c.Locals(LocalLogin, reqData)
		return c.Next()
	}
}
