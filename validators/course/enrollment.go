package courseValidator

import (
	"classroom/validators"

	"github.com/gofiber/fiber/v2"
)

const LocalEnrollment = "validatedEnrollment"

type EnrollRequest struct {
	CourseID *uint `json:"course_id" validate:"required"`
}

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		c.Locals(LocalEnrollment, reqData)
		return c.Next()
	}
}
