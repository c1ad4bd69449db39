package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codesmentors/codesmentors-api/config"
	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/services"
	authutil "github.com/codesmentors/codesmentors-api/utils/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// input rejection happens before any database access, so these run with a
// nil store
func newRegisterApp() *fiber.App {
	handler := NewAuthHandler(nil,
		authutil.NewJWTManager(authutil.JWTConfig{Secret: "test-secret"}),
		services.NewMailerService(&config.EnviornmentVariable{}),
		services.NewLoginHistoryService(nil),
	)

	app := fiber.New()
	app.Post("/user/new-account", handler.Register)
	return app
}

func postRegister(t *testing.T, app *fiber.App, body string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/user/new-account", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	app := newRegisterApp()

	resp, body := postRegister(t, app, `{"name":"Ann","email":"","password":"secret1","username":"ann"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "All fields are required")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := newRegisterApp()

	resp, body := postRegister(t, app, `{"name":"Ann","email":"a@x.com","password":"abc","username":"ann"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Password must be at least 6 characters")
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	app := newRegisterApp()

	resp, body := postRegister(t, app, `{"name":"Ann","email":"not-an-email","password":"secret1","username":"ann"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Invalid email format")
}

func TestRegisterRejectsInvalidUsername(t *testing.T) {
	app := newRegisterApp()

	resp, body := postRegister(t, app, `{"name":"Ann","email":"a@x.com","password":"secret1","username":"a!"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Username")
}

func TestMeReturnsProfileAndSession(t *testing.T) {
	handler := &AuthHandler{}

	now := time.Now()
	claims := &authutil.Claims{
		UserID: 7,
		Email:  "jane@example.com",
		Role:   model.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	user := &model.User{ID: 7, Name: "Jane", Email: "jane@example.com", Username: "jane"}

	app := fiber.New()
	app.Get("/user/me", func(c *fiber.Ctx) error {
		c.Locals("user", user)
		c.Locals("claims", claims)
		return c.Next()
	}, handler.Me)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user/me", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User    model.SafeProfile `json:"user"`
			Session SessionInfo       `json:"session"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, uint(7), body.Data.User.ID)
	assert.Equal(t, model.RoleStudent, body.Data.Session.Role)
	require.NotNil(t, body.Data.Session.ExpiresAt)
	assert.WithinDuration(t, now.Add(time.Hour), *body.Data.Session.ExpiresAt, 2*time.Second)
}

func TestMeWithoutSessionIsUnauthorized(t *testing.T) {
	handler := &AuthHandler{}

	app := fiber.New()
	app.Get("/user/me", handler.Me)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
