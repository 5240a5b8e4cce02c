package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AppError is an expected failure carrying the HTTP status it maps to.
type AppError struct {
	Status  int
	Message string
	Details string
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// InvalidData is the catch-all validation failure.
func InvalidData() *AppError {
	return ValidationError("Invalid data provided")
}

func AuthError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

func ForbiddenError(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message}
}

func InternalError(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message}
}

// Normalize maps an error from any layer onto an AppError.
func Normalize(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError("Resource not found")
	}

	if isIntegrityViolation(err) {
		return &AppError{
			Status:  fiber.StatusConflict,
			Message: "A database integrity error occurred.",
			Details: err.Error(),
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &AppError{Status: fiberErr.Code, Message: fiberErr.Message}
	}

	return InternalError(err.Error())
}

// ErrorHandler is installed as fiber.Config.ErrorHandler; every error returned
// from a handler or recovered from a panic ends up here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	appErr := Normalize(err)
	if appErr.Status >= fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return ErrorResponse(c, appErr)
}

// ErrorResponse writes the uniform failure body.
func ErrorResponse(c *fiber.Ctx, appErr *AppError) error {
	body := fiber.Map{
		"error":       http.StatusText(appErr.Status),
		"message":     appErr.Message,
		"status_code": appErr.Status,
	}
	if appErr.Details != "" {
		body["details"] = appErr.Details
	}
	return c.Status(appErr.Status).JSON(body)
}

// MessageResponse writes the {"message": ...} confirmation used by write endpoints.
func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isIntegrityViolation(err error) bool {
	if IsDuplicate(err) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
