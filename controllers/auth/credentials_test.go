package authController

import (
	"classroom/database"
	"classroom/middleware"
	"classroom/models"
	"classroom/testutil"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appErrorStatus(t *testing.T, err error) int {
	t.Helper()
	var appErr *middleware.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Status
}

func TestRegisterUserHashesPassword(t *testing.T) {
	testutil.SetupTestDB(t)
	db := database.Database.Db

	user, err := RegisterUser(db, "Ada Lovelace", "ada@example.com", "5551234", "password123", models.RoleInstructor)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleInstructor, user.Role)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	testutil.SetupTestDB(t)
	db := database.Database.Db

	_, err := RegisterUser(db, "First", "dup@example.com", "", "password123", models.RoleStudent)
	require.NoError(t, err)

	_, err = RegisterUser(db, "Second", "dup@example.com", "", "password456", models.RoleInstructor)
	require.Error(t, err)
	assert.Equal(t, 409, appErrorStatus(t, err))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterUserRejectsUnknownRole(t *testing.T) {
	testutil.SetupTestDB(t)

	for _, role := range []string{"", "admin", "Student"} {
		_, err := RegisterUser(database.Database.Db, "X", "x@example.com", "", "password123", role)
		require.Error(t, err)
		assert.Equal(t, 400, appErrorStatus(t, err), "role %q", role)
	}
}

func TestVerifyCredentials(t *testing.T) {
	testutil.SetupTestDB(t)
	db := database.Database.Db

	registered, err := RegisterUser(db, "Grace", "grace@example.com", "", "password123", models.RoleStudent)
	require.NoError(t, err)

	user, ok, err := VerifyCredentials(db, "grace@example.com", "password123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, registered.ID, user.ID)

	_, ok, err = VerifyCredentials(db, "grace@example.com", "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = VerifyCredentials(db, "nobody@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegisterUserNormalizesEmail(t *testing.T) {
	testutil.SetupTestDB(t)
	db := database.Database.Db

	user, err := RegisterUser(db, "Ian", " I@Example.com", "", "password123", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "i@example.com", user.Email)

	_, err = RegisterUser(db, "Ian Again", "i@example.com", "", "password123", models.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, 409, appErrorStatus(t, err))

	_, ok, err := VerifyCredentials(db, "I@EXAMPLE.COM", "password123")
	require.NoError(t, err)
	assert.True(t, ok)
}
