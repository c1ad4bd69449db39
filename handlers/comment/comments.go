package comment

import (
	"strconv"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/utils/middleware"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/codesmentors/codesmentors-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CommentHandler handles comment and like requests
type CommentHandler struct {
	db *gorm.DB
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// CreateCommentRequest represents the request body for creating a comment
type CreateCommentRequest struct {
	TutorialID uint   `json:"tutorial"`
	Content    string `json:"content"`
}

// UpdateCommentRequest represents the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// commentView is a comment joined with the author's public identity
type commentView struct {
	model.Comment
	AuthorName     string `json:"authorName"`
	AuthorUsername string `json:"authorUsername"`
}

// CreateComment handles POST /api/v1/comment/create
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Content = validation.SanitizeString(req.Content)
	if req.TutorialID == 0 || req.Content == "" {
		return response.BadRequest(c, "Tutorial and content are required")
	}

	var tutorial model.Tutorial
	if err := h.db.First(&tutorial, req.TutorialID).Error; err != nil {
		return response.NotFound(c, "Tutorial not found")
	}

	comment := model.Comment{
		UserID:     userID,
		TutorialID: req.TutorialID,
		Content:    req.Content,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		return response.InternalServerError(c, "Failed to create comment")
	}

	return response.Created(c, "Comment added successfully", comment)
}

// ListComments handles GET /api/v1/comment/tutorial/:tutorialId: comments on
// a tutorial with the author's name and username joined in, newest first.
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	tutorialID, err := strconv.Atoi(c.Params("tutorialId"))
	if err != nil || tutorialID < 1 {
		return response.BadRequest(c, "Invalid tutorial id")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = response.ParsePageLimit(page, limit)

	var total int64
	if err := h.db.Model(&model.Comment{}).
		Where("tutorial_id = ?", tutorialID).
		Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count comments")
	}

	var comments []commentView
	if err := h.db.Model(&model.Comment{}).
		Select("comments.*, users.name AS author_name, users.username AS author_username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.tutorial_id = ?", tutorialID).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&comments).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch comments")
	}

	return response.Paginated(c, comments, response.CalculatePagination(page, limit, total))
}

// UpdateComment handles PUT /api/v1/comment/:id. Only the author may edit.
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid comment id")
	}

	var req UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Content = validation.SanitizeString(req.Content)
	if req.Content == "" {
		return response.BadRequest(c, "Content is required")
	}

	var comment model.Comment
	if err := h.db.First(&comment, id).Error; err != nil {
		return response.NotFound(c, "Comment not found")
	}

	if comment.UserID != userID {
		return response.Forbidden(c, "You can only edit your own comments")
	}

	if err := h.db.Model(&comment).Update("content", req.Content).Error; err != nil {
		return response.InternalServerError(c, "Failed to update comment")
	}

	return response.SuccessWithMessage(c, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE /api/v1/comment/:id. The author or an admin
// may delete.
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid comment id")
	}

	var comment model.Comment
	if err := h.db.First(&comment, id).Error; err != nil {
		return response.NotFound(c, "Comment not found")
	}

	if comment.UserID != user.ID && user.Role != model.RoleAdmin {
		return response.Forbidden(c, "You can only delete your own comments")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", comment.ID).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete comment")
	}

	return response.SuccessWithMessage(c, "Comment deleted successfully", nil)
}

// LikeComment handles POST /api/v1/comment/:id/like. A like row is recorded
// and the comment's counter incremented in one transaction. Repeat likes
// from the same user are counted again.
func (h *CommentHandler) LikeComment(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid comment id")
	}

	var comment model.Comment
	if err := h.db.First(&comment, id).Error; err != nil {
		return response.NotFound(c, "Comment not found")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		like := model.Like{UserID: userID, CommentID: comment.ID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&comment).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to like comment")
	}

	comment.Likes++
	return response.SuccessWithMessage(c, "Comment liked", fiber.Map{"likes": comment.Likes})
}
