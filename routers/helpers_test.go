package routers

import (
	"classroom/database"
	"classroom/models"
	"classroom/testutil"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dbHandle() *gorm.DB {
	return database.Database.Db
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	testutil.SetupTestDB(t)
	return NewApp()
}

// registerAndLogin goes through the public auth endpoints and returns a bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	resp := testutil.DoJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name": name, "email": email, "phone": "5551234567", "password": "password123", "role": role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutil.DoJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func userIDByEmail(t *testing.T, email string) uint {
	t.Helper()
	var user models.User
	require.NoError(t, dbHandle().Where("email = ?", email).First(&user).Error)
	return user.ID
}

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}
