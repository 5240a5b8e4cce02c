package controllers

import (
	"classroom/database"
	"classroom/middleware"
	"classroom/models"
	"classroom/utils"
	"errors"
	"fmt"

	courseValidator "classroom/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssignGrade records a grade. Assignment and student ids are not checked for existence.
func AssignGrade(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.LocalGrade).(*courseValidator.AssignGradeRequest)
	if !ok {
		return middleware.InvalidData()
	}

	db := database.Database.Db
	var existing models.Grade
	err := db.Where("assignment_id = ? AND student_id = ?", *reqData.AssignmentID, *reqData.StudentID).First(&existing).Error
	if err == nil {
		return middleware.ConflictError("Grade already assigned for this assignment")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup grade: %w", err)
	}

	grade := models.Grade{
		AssignmentID: *reqData.AssignmentID,
		StudentID:    *reqData.StudentID,
		Grade:        *reqData.Grade,
		GradedDate:   utils.Today(),
	}
	if err := db.Create(&grade).Error; err != nil {
		if middleware.IsDuplicate(err) {
			return middleware.ConflictError("Grade already assigned for this assignment")
		}
		return fmt.Errorf("create grade: %w", err)
	}

	return middleware.MessageResponse(c, fiber.StatusCreated, "Grade assigned successfully!")
}
