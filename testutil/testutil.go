package testutil

import (
	"bytes"
	"classroom/config"
	"classroom/database"
	"classroom/models"
	"classroom/utils"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestSecret = "test-secret"

// SetupTestDB points the global config and database at a fresh in-memory SQLite
// database named after the test.
func SetupTestDB(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		DBDriver:       "sqlite",
		DBLogLevel:     "silent",
		JWTKey:         TestSecret,
		JWTAlgorithm:   "HS256",
		AccessTokenTTL: time.Hour,
		SaltRound:      bcrypt.MinCost,
		AllowOrigins:   "*",
	}

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name), "silent")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive and avoids table locks
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}
}

// CreateUser inserts a user directly, bypassing the HTTP layer.
func CreateUser(t *testing.T, name, email, password, role string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Phone: "5550000000", Password: hashed, Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

// DoJSON sends a request with an optional JSON body and bearer token.
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON reads the response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
