package models

import "time"

type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
