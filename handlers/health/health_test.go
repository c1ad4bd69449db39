package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codesmentors/codesmentors-api/database"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	status database.Status
}

func (s *stubStore) Init() error             { return nil }
func (s *stubStore) Close() error            { return nil }
func (s *stubStore) HealthCheck() error      { return nil }
func (s *stubStore) Status() database.Status { return s.status }
func (s *stubStore) GetDB() interface{}      { return nil }

func newTestApp(status database.Status) *fiber.App {
	app := fiber.New()
	handler := NewHealthHandler(&stubStore{status: status})
	app.Get("/health", handler.Check)
	return app
}

func TestHealthCheckConnected(t *testing.T) {
	app := newTestApp(database.Status{
		Connected:       true,
		OpenConnections: 3,
		Idle:            2,
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool            `json:"success"`
		Data    database.Status `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.Connected)
	assert.Equal(t, 3, body.Data.OpenConnections)
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	app := newTestApp(database.Status{
		Connected: false,
		Error:     "connection refused",
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body struct {
		Success bool            `json:"success"`
		Data    database.Status `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "connection refused", body.Data.Error)
}
