package models

import "gorm.io/datatypes"

// Grade is one instructor-assigned mark. A student holds at most one grade per assignment.
type Grade struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	AssignmentID uint           `json:"assignment_id" gorm:"not null;uniqueIndex:idx_grade_assignment_student"`
	StudentID    uint           `json:"student_id" gorm:"not null;index;uniqueIndex:idx_grade_assignment_student"`
	Grade        float64        `json:"grade" gorm:"not null"`
	GradedDate   datatypes.Date `json:"graded_date" gorm:"not null"`
}
