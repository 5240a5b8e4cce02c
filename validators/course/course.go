package courseValidator

import (
	"classroom/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalCourse       = "validatedCourse"
	LocalCourseID     = "validatedCourseID"
	LocalCourseUpdate = "validatedCourseUpdate"
)

type CreateCourseRequest struct {
	Name        *string `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"required"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		c.Locals(LocalCourse, reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := validators.ParamID(c, "id")
		if err != nil {
			return err
		}

		reqData := new(UpdateCourseRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		c.Locals(LocalCourseID, id)
		c.Locals(LocalCourseUpdate, reqData)
		return c.Next()
	}
}
