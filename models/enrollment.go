package models

import "gorm.io/datatypes"

// Enrollment links a student to a course. CourseID is a logical reference and
// is not checked for existence on insert.
type Enrollment struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	StudentID    uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course"`
	CourseID     uint           `json:"course_id" gorm:"not null;index;uniqueIndex:idx_enrollment_student_course"`
	EnrolledDate datatypes.Date `json:"enrolled_date" gorm:"not null"`
}
