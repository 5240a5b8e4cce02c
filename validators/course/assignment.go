package courseValidator

import (
	"classroom/middleware"
	"classroom/utils"
	"classroom/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

const (
	LocalAssignment         = "validatedAssignment"
	LocalAssignmentCourseID = "validatedAssignmentCourseID"
)

type CreateAssignmentRequest struct {
	Title       *string `json:"title" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"required"`
	DueDate     *string `json:"due_date" validate:"required"`
	CourseID    *uint   `json:"course_id" validate:"required"`

	// Due is DueDate parsed as YYYY-MM-DD.
	Due datatypes.Date `json:"-"`
}

func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAssignmentRequest)
		if err := validators.ParseBody(c, reqData); err != nil {
			return err
		}

		due, err := utils.ParseDate(*reqData.DueDate)
		if err != nil {
			return middleware.InvalidData()
		}
		reqData.Due = due

		c.Locals(LocalAssignment, reqData)
		return c.Next()
	}
}

// CourseAssignments validates the :course_id path parameter.
func CourseAssignments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := validators.ParamID(c, "course_id")
		if err != nil {
			return err
		}

		c.Locals(LocalAssignmentCourseID, courseID)
		return c.Next()
	}
}
