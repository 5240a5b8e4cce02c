package controllers

import (
	"classroom/database"
	"classroom/middleware"
	"classroom/models"
	"classroom/utils"
	"fmt"

	courseValidator "classroom/validators/course"

	"github.com/gofiber/fiber/v2"
)

type assignmentResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
}

// CreateAssignment adds an assignment to a course; the course id is a logical reference only.
func CreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.LocalAssignment).(*courseValidator.CreateAssignmentRequest)
	if !ok {
		return middleware.InvalidData()
	}

	assignment := models.Assignment{
		Title:       *reqData.Title,
		Description: *reqData.Description,
		DueDate:     reqData.Due,
		CourseID:    *reqData.CourseID,
	}
	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}

	return middleware.MessageResponse(c, fiber.StatusCreated, "Assignment created successfully!")
}

func GetCourseAssignments(c *fiber.Ctx) error {
	courseID, ok := c.Locals(courseValidator.LocalAssignmentCourseID).(uint)
	if !ok {
		return middleware.InvalidData()
	}

	var assignments []models.Assignment
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id").Find(&assignments).Error; err != nil {
		return fmt.Errorf("list assignments for course %d: %w", courseID, err)
	}

	response := make([]assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		response = append(response, assignmentResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			DueDate:     utils.FormatDate(a.DueDate),
		})
	}
	return c.JSON(response)
}
