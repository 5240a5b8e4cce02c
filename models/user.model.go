package models

import "time"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// IsValidRole reports whether role is one of the two registrable roles.
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash
	Role      string    `json:"role" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
