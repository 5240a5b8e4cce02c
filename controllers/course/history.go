package controllers

import (
	"classroom/database"
	"classroom/middleware"
	"classroom/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type historyRow struct {
	CourseName   string
	EnrolledDate *time.Time
	Grade        *float64
}

type historyResponse struct {
	CourseName   string   `json:"course_name"`
	EnrolledDate *string  `json:"enrolled_date"`
	Grade        *float64 `json:"grade"`
}

// StudentHistory returns, per enrolled course, the enrollment date and the
// student's grade on any of the course's assignments. Ungraded courses yield a
// null grade; a course with several graded assignments yields one row per grade.
func StudentHistory(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	rows, err := studentHistory(database.Database.Db, identity.UserID)
	if err != nil {
		return err
	}

	response := make([]historyResponse, 0, len(rows))
	for _, row := range rows {
		item := historyResponse{CourseName: row.CourseName, Grade: row.Grade}
		if row.EnrolledDate != nil {
			d := row.EnrolledDate.Format(utils.DateLayout)
			item.EnrolledDate = &d
		}
		response = append(response, item)
	}
	return c.JSON(response)
}

func studentHistory(db *gorm.DB, studentID uint) ([]historyRow, error) {
	var rows []historyRow
	err := db.Table("courses").
		Select("courses.name AS course_name, enrollments.enrolled_date AS enrolled_date, grades.grade AS grade").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Joins("LEFT JOIN grades ON grades.student_id = enrollments.student_id AND grades.assignment_id IN (SELECT assignments.id FROM assignments WHERE assignments.course_id = courses.id)").
		Where("enrollments.student_id = ?", studentID).
		Order("enrollments.id, grades.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load history for student %d: %w", studentID, err)
	}
	return rows, nil
}
