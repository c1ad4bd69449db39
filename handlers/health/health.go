package health

import (
	"github.com/codesmentors/codesmentors-api/database"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness from the live connection pool
type HealthHandler struct {
	store database.Storage
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.Storage) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health: 200 while the database answers pings, 503
// otherwise. The payload carries the pool counters either way.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := h.store.Status()
	if !status.Connected {
		return c.Status(fiber.StatusServiceUnavailable).JSON(response.Response{
			Success: false,
			Message: "Database unavailable",
			Data:    status,
		})
	}

	return response.SuccessWithMessage(c, "OK", status)
}
