package loginhistory

import (
	"strconv"
	"time"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/services"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LoginHistoryHandler exposes the audit trail of login attempts
type LoginHistoryHandler struct {
	db      *gorm.DB
	history *services.LoginHistoryService
}

// NewLoginHistoryHandler creates a new login history handler
func NewLoginHistoryHandler(db *gorm.DB, history *services.LoginHistoryService) *LoginHistoryHandler {
	return &LoginHistoryHandler{db: db, history: history}
}

// RecordRequest represents the request body for recording a login attempt
type RecordRequest struct {
	UserID        uint           `json:"userId"`
	IPAddress     string         `json:"ipAddress"`
	UserAgent     string         `json:"userAgent"`
	DeviceInfo    string         `json:"deviceInfo"`
	Location      model.Location `json:"location"`
	Success       *bool          `json:"success"`
	FailureReason string         `json:"failureReason"`
}

// UpdateRequest represents the admin correction body for a history entry
type UpdateRequest struct {
	DeviceInfo    *string         `json:"deviceInfo"`
	Location      *model.Location `json:"location"`
	Success       *bool           `json:"success"`
	FailureReason *string         `json:"failureReason"`
}

// Record handles POST /api/v1/login-history: manual insertion of an
// attempt, e.g. backfilling from an external gateway.
func (h *LoginHistoryHandler) Record(c *fiber.Ctx) error {
	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.UserID == 0 || req.IPAddress == "" {
		return response.BadRequest(c, "userId and ipAddress are required")
	}

	var user model.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	success := true
	if req.Success != nil {
		success = *req.Success
	}

	entry, err := h.history.RecordAttempt(c.Context(), req.UserID,
		req.IPAddress, req.UserAgent, req.DeviceInfo, req.Location,
		success, req.FailureReason)
	if err != nil {
		return response.InternalServerError(c, "Failed to record login attempt")
	}

	return response.Created(c, "Login attempt recorded", entry)
}

// List handles GET /api/v1/login-history (admin only) with userId,
// startDate, endDate, and success filters.
func (h *LoginHistoryHandler) List(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = response.ParsePageLimit(page, limit)

	entries, total, err := h.history.Query(c.Context(), *filter, page, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch login history")
	}

	return response.Paginated(c, entries, response.CalculatePagination(page, limit, total))
}

// ListForUser handles GET /api/v1/login-history/user/:userId (admin only)
func (h *LoginHistoryHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	filter.UserID = userID

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = response.ParsePageLimit(page, limit)

	entries, total, err := h.history.Query(c.Context(), *filter, page, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch login history")
	}

	return response.Paginated(c, entries, response.CalculatePagination(page, limit, total))
}

// Get handles GET /api/v1/login-history/:id (admin only)
func (h *LoginHistoryHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid login history id")
	}

	var entry model.LoginHistory
	if err := h.db.First(&entry, id).Error; err != nil {
		return response.NotFound(c, "Login history entry not found")
	}

	return response.Success(c, entry)
}

// Update handles PUT /api/v1/login-history/:id (admin only): corrections to
// an existing entry. Identity fields (user, ip, time) are immutable.
func (h *LoginHistoryHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid login history id")
	}

	var entry model.LoginHistory
	if err := h.db.First(&entry, id).Error; err != nil {
		return response.NotFound(c, "Login history entry not found")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.DeviceInfo != nil {
		updates["device_info"] = *req.DeviceInfo
	}
	if req.Location != nil {
		updates["location"] = datatypes.NewJSONType(*req.Location)
	}
	if req.Success != nil {
		updates["success"] = *req.Success
		if *req.Success {
			updates["failure_reason"] = nil
		}
	}
	if req.FailureReason != nil {
		updates["failure_reason"] = *req.FailureReason
	}

	if len(updates) == 0 {
		return response.BadRequest(c, "Nothing to update")
	}

	if err := h.db.Model(&entry).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update login history entry")
	}

	return response.SuccessWithMessage(c, "Login history entry updated", entry)
}

// Delete handles DELETE /api/v1/login-history/:id (admin only)
func (h *LoginHistoryHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid login history id")
	}

	result := h.db.Delete(&model.LoginHistory{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete login history entry")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Login history entry not found")
	}

	return response.SuccessWithMessage(c, "Login history entry deleted", nil)
}

// DeleteForUser handles DELETE /api/v1/login-history/user/:userId (admin
// only): purges a user's entire trail.
func (h *LoginHistoryHandler) DeleteForUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	result := h.db.Where("user_id = ?", userID).Delete(&model.LoginHistory{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete login history")
	}

	return response.SuccessWithMessage(c, "Login history deleted",
		fiber.Map{"deletedCount": result.RowsAffected})
}

// Statistics handles GET /api/v1/login-history/stats (admin only). The same
// userId/startDate/endDate/success filters as the listing apply; on an empty
// match every counter is zero.
func (h *LoginHistoryHandler) Statistics(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	stats, err := h.history.Statistics(c.Context(), *filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to compute login statistics")
	}

	return response.Success(c, stats)
}

func parseUserID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}

func parseFilter(c *fiber.Ctx) (*services.HistoryFilter, error) {
	filter := services.HistoryFilter{}

	if v := c.Query("userId", ""); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId filter")
		}
		filter.UserID = uint(id)
	}

	if v := c.Query("startDate", ""); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid startDate filter")
		}
		filter.StartDate = &t
	}

	if v := c.Query("endDate", ""); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid endDate filter")
		}
		filter.EndDate = &t
	}

	if v := c.Query("success", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid success filter")
		}
		filter.Success = &b
	}

	return &filter, nil
}

// parseDate accepts RFC3339 timestamps and plain yyyy-mm-dd dates
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
