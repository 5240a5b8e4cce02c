package authController

import (
	"classroom/middleware"
	"classroom/models"
	"classroom/utils"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// RegisterUser stores a new identity with a bcrypt hash of password.
func RegisterUser(db *gorm.DB, name, email, phone, password, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, middleware.ValidationError("Invalid role. Must be 'student' or 'instructor'")
	}

	email = utils.NormalizeEmail(email)
	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return nil, middleware.ConflictError("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hashedPassword,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		// A concurrent registration can still win the unique index
		if middleware.IsDuplicate(err) {
			return nil, middleware.ConflictError("Email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// VerifyCredentials returns the user when email exists and password matches.
// Unknown email and wrong password are indistinguishable to the caller.
func VerifyCredentials(db *gorm.DB, email, password string) (*models.User, bool, error) {
	var user models.User
	err := db.Where("email = ?", utils.NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup email: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, false, nil
	}
	return &user, true, nil
}
