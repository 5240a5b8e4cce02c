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

type enrollmentResponse struct {
	CourseID     uint    `json:"course_id"`
	EnrolledDate *string `json:"enrolled_date"`
}

// EnrollInCourse enrolls the calling student. The course id is not checked for existence.
func EnrollInCourse(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}
	reqData, ok := c.Locals(courseValidator.LocalEnrollment).(*courseValidator.EnrollRequest)
	if !ok {
		return middleware.InvalidData()
	}

	db := database.Database.Db
	courseID := *reqData.CourseID

	// Check if user is already enrolled
	var existingEnrollment models.Enrollment
	err = db.Where("student_id = ? AND course_id = ?", identity.UserID, courseID).First(&existingEnrollment).Error
	if err == nil {
		return middleware.ConflictError("Already enrolled in this course")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup enrollment: %w", err)
	}

	enrollment := models.Enrollment{
		StudentID:    identity.UserID,
		CourseID:     courseID,
		EnrolledDate: utils.Today(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if middleware.IsDuplicate(err) {
			return middleware.ConflictError("Already enrolled in this course")
		}
		return fmt.Errorf("create enrollment: %w", err)
	}

	return middleware.MessageResponse(c, fiber.StatusCreated, "Enrolled successfully!")
}

// GetEnrollments lists the calling student's own enrollments.
func GetEnrollments(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("student_id = ?", identity.UserID).Order("id").Find(&enrollments).Error; err != nil {
		return fmt.Errorf("list enrollments: %w", err)
	}

	response := make([]enrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		response = append(response, enrollmentResponse{
			CourseID:     e.CourseID,
			EnrolledDate: utils.FormatDate(e.EnrolledDate),
		})
	}
	return c.JSON(response)
}
