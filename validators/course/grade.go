package courseValidator

import (
	"classroom/validators"

	"github.com/gofiber/fiber/v2"
)

const LocalGrade = "validatedGrade"

type AssignGradeRequest struct {
	AssignmentID *uint    `json:"assignment_id" validate:"required"`
	StudentID    *uint    `json:"student_id" validate:"required"`
	Grade        *float64 `json:"grade" validate:"required"`
}

func AssignGrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignGradeRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		c.Locals(LocalGrade, reqData)
		return c.Next()
	}
}
