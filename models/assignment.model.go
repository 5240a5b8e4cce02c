package models

import "gorm.io/datatypes"

type Assignment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"size:100;not null"`
	Description string         `json:"description" gorm:"type:text"`
	DueDate     datatypes.Date `json:"due_date" gorm:"not null"`
	CourseID    uint           `json:"course_id" gorm:"index;not null"`
}
