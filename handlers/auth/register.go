package auth

import (
	"strings"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/services"
	authutil "github.com/codesmentors/codesmentors-api/utils/auth"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/codesmentors/codesmentors-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db         *gorm.DB
	jwtManager *authutil.JWTManager
	mailer     *services.MailerService
	history    *services.LoginHistoryService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, mailer *services.MailerService, history *services.LoginHistoryService) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtManager: jwtManager,
		mailer:     mailer,
		history:    history,
	}
}

// RegisterRequest represents a new-account request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=3"`
}

// Register handles POST /user/new-account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Field validation
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" || strings.TrimSpace(req.Username) == "" {
		return response.BadRequest(c, "All fields are required")
	}

	if !authutil.IsPasswordValid(req.Password) {
		return response.BadRequest(c, "Password must be at least 6 characters")
	}

	// Normalize data
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if !validation.ValidateEmail(email) {
		return response.BadRequest(c, "Invalid email format")
	}
	if ok, msg := validation.ValidateUsername(username); !ok {
		return response.BadRequest(c, msg)
	}

	// Check existing user (email OR username)
	var existing model.User
	if err := h.db.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
		return response.Conflict(c, "Email or username already in use")
	}

	hashedPassword, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	otp := authutil.GenerateOTP()
	user := model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Username: username,
		Password: hashedPassword,
		OTP:      &otp,
		Role:     model.RoleStudent,
		Status:   model.StatusActive,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to create user")
	}

	// Best-effort delivery; a failed send can be recovered via resend-otp
	_ = h.mailer.SendOTP(user.Email, user.Name, otp)

	return response.Created(c, "Account created successfully", user.Safe())
}
