package controllers

import (
	"classroom/database"
	"classroom/middleware"
	"classroom/models"
	"errors"
	"fmt"

	courseValidator "classroom/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type courseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCourse creates a course owned by the calling instructor.
func CreateCourse(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}
	reqData, ok := c.Locals(courseValidator.LocalCourse).(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.InvalidData()
	}

	course := models.Course{
		Name:         *reqData.Name,
		Description:  *reqData.Description,
		InstructorID: identity.UserID,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	return middleware.MessageResponse(c, fiber.StatusCreated, "Course created successfully!")
}

// GetAllCourses lists every course, unfiltered.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("id").Find(&courses).Error; err != nil {
		return fmt.Errorf("list courses: %w", err)
	}

	response := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		response = append(response, courseResponse{
			ID:          course.ID,
			Name:        course.Name,
			Description: course.Description,
		})
	}
	return c.JSON(response)
}

// UpdateCourse applies a partial update. Any instructor may update any course.
func UpdateCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals(courseValidator.LocalCourseID).(uint)
	if !ok {
		return middleware.InvalidData()
	}
	reqData, ok := c.Locals(courseValidator.LocalCourseUpdate).(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.InvalidData()
	}

	db := database.Database.Db
	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFoundError("Course not found")
		}
		return fmt.Errorf("load course %d: %w", courseID, err)
	}

	if reqData.Name != nil {
		course.Name = *reqData.Name
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}

	if err := db.Save(&course).Error; err != nil {
		return fmt.Errorf("update course %d: %w", courseID, err)
	}

	return middleware.MessageResponse(c, fiber.StatusOK, "Course updated successfully!")
}
