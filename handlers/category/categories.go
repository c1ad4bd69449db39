package category

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

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	db *gorm.DB
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// CategoryRequest represents the request body for creating or updating a
// category
type CategoryRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        model.Icon `json:"icon"`
	IsPublished *bool      `json:"isPublished"`
}

// CreateCategory handles POST /api/v1/category/create (admin only)
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if req.Name == "" || req.Icon.URL == "" {
		return response.BadRequest(c, "Name and icon are required")
	}

	var existing model.Category
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "Category already exists")
	}

	icon := req.Icon
	if icon.AltText == "" {
		icon.AltText = req.Name + " icon"
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	category := model.Category{
		Name:        req.Name,
		Slug:        seo.Slugify(req.Name),
		Description: req.Description,
		Icon:        datatypes.NewJSONType(icon),
		IsPublished: isPublished,
		CreatedBy:   datatypes.NewJSONType(user.Snapshot()),
	}

	if err := h.db.Create(&category).Error; err != nil {
		return response.InternalServerError(c, "Failed to create category")
	}

	return response.Created(c, "Category created successfully", category)
}

// ListCategories handles GET /api/v1/public/categories: published categories
// only.
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := h.db.Where("is_published = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch categories")
	}
	return response.Success(c, categories)
}

// GetCategory handles GET /api/v1/category/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid category id")
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category not found")
	}
	return response.Success(c, category)
}

// UpdateCategory handles PUT /api/v1/category/:id (admin only)
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid category id")
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category not found")
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if name := validation.SanitizeString(req.Name); name != "" {
		updates["name"] = name
		updates["slug"] = seo.Slugify(name)
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Icon.URL != "" {
		updates["icon"] = datatypes.NewJSONType(req.Icon)
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	if len(updates) == 0 {
		return response.BadRequest(c, "Nothing to update")
	}

	if err := h.db.Model(&category).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update category")
	}

	return response.SuccessWithMessage(c, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/v1/category/:id (admin only)
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid category id")
	}

	result := h.db.Delete(&model.Category{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete category")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Category not found")
	}

	return response.SuccessWithMessage(c, "Category deleted successfully", nil)
}
