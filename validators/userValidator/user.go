package userValidator

import (
	"classroom/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID     = "validatedUserID"
	LocalUserUpdate = "validatedUserUpdate"
)

// UpdateUserRequest carries only the keys present in the payload; nil means "keep".
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

// UserID validates the :id path parameter.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := validators.ParamID(c, "id")
		if err != nil {
			return err
		}
		c.Locals(LocalUserID, id)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := validators.ParamID(c, "id")
		if err != nil {
			return err
		}

		reqData := new(UpdateUserRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		c.Locals(LocalUserID, id)
		c.Locals(LocalUserUpdate, reqData)
		return c.Next()
	}
}
