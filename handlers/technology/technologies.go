package technology

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/utils/cache"
	"github.com/codesmentors/codesmentors-api/utils/middleware"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/codesmentors/codesmentors-api/utils/seo"
	"github.com/codesmentors/codesmentors-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	publicListCachePrefix = "technologies:public:"
	publicListCacheTTL    = 5 * time.Minute
)

// TechnologyHandler handles technology-related requests
type TechnologyHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	cache     *cache.RedisCache // nil when Redis is unavailable
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(db *gorm.DB, redisCache *cache.RedisCache) *TechnologyHandler {
	return &TechnologyHandler{
		db:        db,
		validator: validation.NewValidator(),
		cache:     redisCache,
	}
}

// CreateTechnologyRequest represents the request body for creating a technology
type CreateTechnologyRequest struct {
	Name        string           `json:"name" validate:"required,min=2,max=255"`
	Description string           `json:"description"`
	Icon        model.Icon       `json:"icon"`
	SEO         model.SEO        `json:"seo"`
	Topics      []model.TopicRef `json:"topics"`
	IsPublished *bool            `json:"isPublished"`
}

// CreateTechnology handles POST /api/v1/technology/create (admin only)
func (h *TechnologyHandler) CreateTechnology(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateTechnologyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Technology name is required")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	// Existence pre-check; not a transactional guarantee under concurrent
	// writers, the unique index is the backstop.
	var existing model.Technology
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "Technology already exists")
	}

	seoData := seo.TechnologyDefaults(req.SEO, req.Name, req.Description)

	icon := req.Icon
	if icon.AltText == "" {
		icon.AltText = req.Name + " logo"
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	topics := req.Topics
	if topics == nil {
		topics = []model.TopicRef{}
	}

	technology := model.Technology{
		Name:        req.Name,
		Slug:        seo.Slugify(req.Name),
		Description: req.Description,
		Icon:        datatypes.NewJSONType(icon),
		SEO:         datatypes.NewJSONType(seoData),
		Topics:      datatypes.NewJSONSlice(topics),
		IsPublished: isPublished,
		CreatedBy:   datatypes.NewJSONType(user.Snapshot()),
	}

	if err := h.db.Create(&technology).Error; err != nil {
		return response.InternalServerError(c, "Failed to create technology")
	}

	h.invalidatePublicCache(c)

	return response.Created(c, "Technology created successfully", technology)
}

// ListPublicTechnologies handles GET /api/v1/public/technologies.
// Only published entries are returned; pages are served from Redis when
// available.
func (h *TechnologyHandler) ListPublicTechnologies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = response.ParsePageLimit(page, limit)

	cacheKey := fmt.Sprintf("%s%d:%d", publicListCachePrefix, page, limit)
	if h.cache != nil {
		var cached response.PaginatedResponse
		if err := h.cache.GetJSON(c.Context(), cacheKey, &cached); err == nil {
			return c.Status(fiber.StatusOK).JSON(cached)
		}
	}

	query := h.db.Model(&model.Technology{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count technologies")
	}

	var technologies []model.Technology
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&technologies).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch technologies")
	}

	payload := response.PaginatedResponse{
		Success:    true,
		Data:       technologies,
		Pagination: response.CalculatePagination(page, limit, total),
	}

	if h.cache != nil {
		_ = h.cache.SetJSON(c.Context(), cacheKey, payload, publicListCacheTTL)
	}

	return c.Status(fiber.StatusOK).JSON(payload)
}

// ListPrivateTechnologies handles GET /api/v1/private/technologies (admin
// only): full listing with search and publication filters.
func (h *TechnologyHandler) ListPrivateTechnologies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = response.ParsePageLimit(page, limit)

	search := c.Query("search", "")
	isPublished := c.Query("isPublished", "")
	topic := c.Query("topic", "")

	query := h.db.Model(&model.Technology{})

	if search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if isPublished == "true" {
		query = query.Where("is_published = ?", true)
	} else if isPublished == "false" {
		query = query.Where("is_published = ?", false)
	}

	if topic != "" {
		// Match against the denormalized topic references
		query = query.Where("topics @> ?", fmt.Sprintf(`[{"slug": %q}]`, strings.ToLower(topic)))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count technologies")
	}

	var technologies []model.Technology
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&technologies).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch technologies")
	}

	return response.Paginated(c, technologies, response.CalculatePagination(page, limit, total))
}

func (h *TechnologyHandler) invalidatePublicCache(c *fiber.Ctx) {
	if h.cache == nil {
		return
	}
	_ = h.cache.DeleteByPrefix(c.Context(), publicListCachePrefix)
}
