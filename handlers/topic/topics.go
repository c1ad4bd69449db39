package topic

import (
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

// TopicHandler handles topic-related requests
type TopicHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(db *gorm.DB, redisCache *cache.RedisCache) *TopicHandler {
	return &TopicHandler{db: db, cache: redisCache}
}

// CreateTopicRequest represents the request body for creating a topic
type CreateTopicRequest struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	TechnologySlug string     `json:"technology"`
	Icon           model.Icon `json:"icon"`
	SEO            model.SEO  `json:"seo"`
	OgImage        string     `json:"ogImage"`
	IsActive       *bool      `json:"isActive"`
}

// CreateTopic handles POST /api/v1/topic/create (admin only). The topic row
// and the parent technology's topics reference list are written in one
// transaction so the denormalized list never points at a missing topic.
func (h *TopicHandler) CreateTopic(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if req.Name == "" || req.TechnologySlug == "" {
		return response.BadRequest(c, "Topic name and technology are required")
	}

	var technology model.Technology
	if err := h.db.Where("slug = ?", req.TechnologySlug).First(&technology).Error; err != nil {
		return response.NotFound(c, "Technology not found")
	}

	var existing model.Topic
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "Topic already exists")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	topic := model.Topic{
		Name:         req.Name,
		Slug:         seo.Slugify(req.Name),
		Description:  req.Description,
		TechnologyID: technology.ID,
		SEO:          datatypes.NewJSONType(seo.TopicDefaults(req.SEO, req.Name)),
		Tutorials:    datatypes.NewJSONSlice([]uint{}),
		Icon:         datatypes.NewJSONType(req.Icon),
		OgImage:      req.OgImage,
		IsActive:     isActive,
		CreatedBy:    datatypes.NewJSONType(user.Snapshot()),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&topic).Error; err != nil {
			return err
		}

		refs := append([]model.TopicRef(technology.Topics), model.TopicRef{
			ID:   topic.ID,
			Name: topic.Name,
			Slug: topic.Slug,
		})

		return tx.Model(&technology).
			Update("topics", datatypes.NewJSONSlice(refs)).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create topic")
	}

	h.invalidateTechnologyCache(c)

	return response.Created(c, "Topic created successfully", topic)
}

// ListTopics handles GET /api/v1/public/topics: active topics of a
// technology, resolved by its slug.
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	technologySlug := c.Query("technology", "")
	if technologySlug == "" {
		return response.BadRequest(c, "Technology slug is required")
	}

	var technology model.Technology
	if err := h.db.Where("slug = ?", technologySlug).First(&technology).Error; err != nil {
		return response.NotFound(c, "Technology not found")
	}

	var topics []model.Topic
	if err := h.db.Where("technology_id = ? AND is_active = ?", technology.ID, true).
		Order("created_at ASC").
		Find(&topics).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch topics")
	}

	return response.Success(c, topics)
}

func (h *TopicHandler) invalidateTechnologyCache(c *fiber.Ctx) {
	if h.cache == nil {
		return
	}
	_ = h.cache.DeleteByPrefix(c.Context(), "technologies:public:")
}
