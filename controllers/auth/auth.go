package authController

import (
	"classroom/database"
	"classroom/middleware"
	"fmt"
	"log"
	"strconv"
	"strings"

	authValidator "classroom/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.LocalRegister).(*authValidator.RegisterRequest)
	if !ok {
		return middleware.InvalidData()
	}

	user, err := RegisterUser(database.Database.Db, reqData.Name, reqData.Email, reqData.Phone, reqData.Password, reqData.Role)
	if err != nil {
		return err
	}

	log.Printf("Registered %s %d", user.Role, user.ID)
	return middleware.MessageResponse(c, fiber.StatusCreated, fmt.Sprintf("%s registered successfully!", capitalize(user.Role)))
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.LocalLogin).(*authValidator.LoginRequest)
	if !ok {
		return middleware.InvalidData()
	}

	user, matched, err := VerifyCredentials(database.Database.Db, reqData.Email, reqData.Password)
	if err != nil {
		return err
	}
	if !matched {
		return middleware.AuthError("Invalid credentials")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}

// Logout only acknowledges the request; tokens are stateless and are discarded client-side.
func Logout(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}
	return middleware.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("User %d logged out successfully!", identity.UserID))
}

// TestToken echoes the identity carried by the caller's token.
func TestToken(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"identity": strconv.FormatUint(uint64(identity.UserID), 10),
		"role":     identity.Role,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
