package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateApp(gate fiber.Handler, invoked *bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/op", gate, func(c *fiber.Ctx) error {
		*invoked = true
		identity, err := CurrentIdentity(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": identity.UserID, "role": identity.Role})
	})
	return app
}

func call(t *testing.T, app *fiber.App, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/op", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	useTestConfig(t)
	invoked := false
	app := newGateApp(RequireRole("instructor"), &invoked)

	token, err := GenerateJWT(3, "student")
	require.NoError(t, err)

	status, body := call(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "Access forbidden: insufficient permissions")
	assert.False(t, invoked, "operation must not run for a forbidden role")
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	useTestConfig(t)
	invoked := false
	app := newGateApp(RequireRole("instructor"), &invoked)

	token, err := GenerateJWT(9, "instructor")
	require.NoError(t, err)

	status, body := call(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"user_id":9,"role":"instructor"}`, body)
	assert.True(t, invoked)
}

func TestGatesRejectMissingOrInvalidTokens(t *testing.T) {
	useTestConfig(t)

	for name, gate := range map[string]fiber.Handler{
		"role":          RequireRole("student"),
		"authenticated": RequireAuthenticated,
	} {
		t.Run(name, func(t *testing.T) {
			invoked := false
			app := newGateApp(gate, &invoked)

			for _, header := range []string{"", "Token abc", "Bearer ", "Bearer garbage"} {
				status, _ := call(t, app, header)
				assert.Equal(t, fiber.StatusUnauthorized, status, "header %q", header)
			}
			assert.False(t, invoked)
		})
	}
}

func TestRequireAuthenticatedAcceptsAnyRole(t *testing.T) {
	useTestConfig(t)

	for _, role := range []string{"student", "instructor"} {
		invoked := false
		app := newGateApp(RequireAuthenticated, &invoked)

		token, err := GenerateJWT(1, role)
		require.NoError(t, err)

		status, _ := call(t, app, "Bearer "+token)
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, invoked)
	}
}
