package tutorial

import (
	"strconv"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/utils/middleware"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/codesmentors/codesmentors-api/utils/seo"
	"github.com/codesmentors/codesmentors-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TutorialHandler handles tutorial-related requests
type TutorialHandler struct {
	db *gorm.DB
}

// NewTutorialHandler creates a new tutorial handler
func NewTutorialHandler(db *gorm.DB) *TutorialHandler {
	return &TutorialHandler{db: db}
}

// CreateTutorialRequest represents the request body for creating a tutorial
type CreateTutorialRequest struct {
	Title          string              `json:"title"`
	Excerpt        string              `json:"excerpt"`
	Content        string              `json:"content"`
	TopicSlug      string              `json:"topic"`
	TechnologySlug string              `json:"technology"`
	SEO            model.SEO           `json:"seo"`
	FeaturedImage  model.FeaturedImage `json:"featuredImage"`
	OgImage        string              `json:"ogImage"`
	IsPublished    *bool               `json:"isPublished"`
}

// CreateTutorial handles POST /api/v1/tutorial/create (admin only)
func (h *TutorialHandler) CreateTutorial(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateTutorialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)
	if req.Title == "" || req.Excerpt == "" || req.Content == "" ||
		req.TopicSlug == "" || req.TechnologySlug == "" {
		return response.BadRequest(c, "All fields are required to create Tutorial")
	}

	// parents resolved independently so the caller learns which slug is bad
	var topic model.Topic
	if err := h.db.Where("slug = ?", req.TopicSlug).First(&topic).Error; err != nil {
		return response.NotFound(c, "Topic not found")
	}

	var technology model.Technology
	if err := h.db.Where("slug = ?", req.TechnologySlug).First(&technology).Error; err != nil {
		return response.NotFound(c, "Technology not found")
	}

	var existing model.Tutorial
	if err := h.db.Where("title = ?", req.Title).First(&existing).Error; err == nil {
		return response.Conflict(c, "Tutorial with this title already exists")
	}

	seoData := req.SEO
	if seoData.MetaTitle == "" {
		seoData.MetaTitle = req.Title
	}
	if seoData.MetaDescription == "" {
		seoData.MetaDescription = seo.Truncate(req.Excerpt, seo.MetaDescriptionLimit)
	}
	seoData.Keywords = seo.TutorialKeywords(seoData.Keywords, req.Title, topic.Name, technology.Name)

	ogImage := req.OgImage
	if ogImage == "" {
		ogImage = req.FeaturedImage.URL
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	tutorial := model.Tutorial{
		Title:   req.Title,
		Slug:    seo.Slugify(req.Title),
		Excerpt: seo.Truncate(req.Excerpt, seo.MetaDescriptionLimit),
		Content: req.Content,
		Topic: datatypes.NewJSONType(model.ParentRef{
			ID:   topic.ID,
			Name: topic.Name,
			Slug: topic.Slug,
		}),
		Technology: datatypes.NewJSONType(model.ParentRef{
			ID:   technology.ID,
			Name: technology.Name,
			Slug: technology.Slug,
		}),
		SEO:           datatypes.NewJSONType(seoData),
		FeaturedImage: datatypes.NewJSONType(req.FeaturedImage),
		OgImage:       ogImage,
		Views:         0,
		ReadingTime:   seo.ReadingTime(req.Content),
		IsPublished:   isPublished,
		CreatedBy:     datatypes.NewJSONType(user.Snapshot()),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tutorial).Error; err != nil {
			return err
		}

		ids := append([]uint(topic.Tutorials), tutorial.ID)
		return tx.Model(&topic).
			Update("tutorials", datatypes.NewJSONSlice(ids)).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create tutorial")
	}

	return response.Created(c, "Tutorial created successfully", tutorial)
}

// GetTutorialBySlug handles GET /api/v1/tutorial/:slug. Each hit increments
// the view counter.
func (h *TutorialHandler) GetTutorialBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "Tutorial slug is required")
	}

	var tutorial model.Tutorial
	if err := h.db.Where("slug = ? AND is_published = ?", slug, true).
		First(&tutorial).Error; err != nil {
		return response.NotFound(c, "Tutorial not found")
	}

	// best effort, a lost increment is acceptable
	if err := h.db.Model(&tutorial).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err == nil {
		tutorial.Views++
	}

	return response.Success(c, tutorial)
}

// ListTutorials handles GET /api/v1/public/tutorials: published tutorials
// of a topic, paginated.
func (h *TutorialHandler) ListTutorials(c *fiber.Ctx) error {
	topicSlug := c.Query("topic", "")
	if topicSlug == "" {
		return response.BadRequest(c, "Topic slug is required")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = response.ParsePageLimit(page, limit)

	query := h.db.Model(&model.Tutorial{}).
		Where("is_published = ?", true).
		Where("topic ->> 'slug' = ?", topicSlug)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count tutorials")
	}

	var tutorials []model.Tutorial
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&tutorials).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch tutorials")
	}

	return response.Paginated(c, tutorials, response.CalculatePagination(page, limit, total))
}
