package userController

import (
	"classroom/database"
	"classroom/middleware"
	"classroom/models"
	"classroom/utils"
	"errors"
	"fmt"
	"log"

	userValidator "classroom/validators/userValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllUsers lists every user; the response never carries password hashes.
func GetAllUsers(c *fiber.Ctx) error {
	users := []models.User{}
	if err := database.Database.Db.Order("id").Find(&users).Error; err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	return c.JSON(users)
}

func GetUser(c *fiber.Ctx) error {
	userID, ok := c.Locals(userValidator.LocalUserID).(uint)
	if !ok {
		return middleware.InvalidData()
	}

	user, err := findUser(database.Database.Db, userID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// UpdateUser applies a partial update; any authenticated caller may update any user.
// Role and password are not updatable here.
func UpdateUser(c *fiber.Ctx) error {
	userID, ok := c.Locals(userValidator.LocalUserID).(uint)
	if !ok {
		return middleware.InvalidData()
	}
	reqData, ok := c.Locals(userValidator.LocalUserUpdate).(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.InvalidData()
	}

	db := database.Database.Db
	user, err := findUser(db, userID)
	if err != nil {
		return err
	}

	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.Email != nil {
		user.Email = utils.NormalizeEmail(*reqData.Email)
	}
	if reqData.Phone != nil {
		user.Phone = *reqData.Phone
	}

	if err := db.Save(user).Error; err != nil {
		if middleware.IsDuplicate(err) {
			return middleware.ConflictError("Email already registered")
		}
		return fmt.Errorf("update user %d: %w", userID, err)
	}

	return middleware.MessageResponse(c, fiber.StatusOK, "User updated successfully!")
}

// DeleteUser removes the user together with their enrollments and grades.
// Users that still own courses are refused so no course is left without an instructor.
func DeleteUser(c *fiber.Ctx) error {
	userID, ok := c.Locals(userValidator.LocalUserID).(uint)
	if !ok {
		return middleware.InvalidData()
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, userID); err != nil {
			return err
		}

		var owned int64
		if err := tx.Model(&models.Course{}).Where("instructor_id = ?", userID).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return middleware.ConflictError("User still owns courses")
		}

		if err := tx.Where("student_id = ?", userID).Delete(&models.Grade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", userID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return err
	}

	log.Printf("Deleted user %d", userID)
	return middleware.MessageResponse(c, fiber.StatusOK, "User deleted successfully!")
}

func findUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.NotFoundError("User not found")
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	return &user, nil
}
