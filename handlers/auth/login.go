package auth

import (
	"strings"
	"time"

	"github.com/codesmentors/codesmentors-api/model"
	authutil "github.com/codesmentors/codesmentors-api/utils/auth"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PasswordLoginRequest logs in with email or username plus password
type PasswordLoginRequest struct {
	InputValue string `json:"inputValue" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// OTPLoginRequest is a passwordless login request
type OTPLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"OTP" validate:"required,len=6"`
}

// LoginResponse is the payload returned on a successful login
type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

// LoginUser carries the user fields returned with a session token
type LoginUser struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// recordLogin appends the attempt to the audit trail and stamps last_login
// on success. Audit failures never fail the login itself.
func (h *AuthHandler) recordLogin(c *fiber.Ctx, user *model.User, success bool, failureReason string) {
	_, _ = h.history.RecordAttempt(
		c.Context(),
		user.ID,
		c.IP(),
		c.Get("User-Agent"),
		"",
		model.Location{},
		success,
		failureReason,
	)

	if success {
		now := time.Now()
		h.db.Model(user).Update("last_login", now)
	}
}

// LoginViaPassword handles POST /login/via-password. The identifier matches
// either email or username. Verification and blocked status are not checked
// before issuing a token.
func (h *AuthHandler) LoginViaPassword(c *fiber.Ctx) error {
	var req PasswordLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.InputValue) == "" || req.Password == "" {
		return response.BadRequest(c, "All fields are required")
	}

	identifier := strings.ToLower(strings.TrimSpace(req.InputValue))

	var user model.User
	if err := h.db.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	if err := authutil.VerifyPassword(user.Password, req.Password); err != nil {
		h.recordLogin(c, &user, false, model.FailureInvalidCredentials)
		return response.Unauthorized(c, "Invalid credentials")
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role, user.Username)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	h.recordLogin(c, &user, true, "")

	return response.SuccessWithMessage(c, "Login successful", LoginResponse{
		User: LoginUser{
			Email:    user.Email,
			Name:     user.Name,
			Username: user.Username,
			Role:     user.Role,
		},
		Token: token,
	})
}

// LoginViaOTP handles POST /login/via-otp. The OTP has no expiry: it stays
// valid until consumed by verification or overwritten by a resend.
func (h *AuthHandler) LoginViaOTP(c *fiber.Ctx) error {
	var req OTPLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.OTP) == "" {
		return response.BadRequest(c, "OTP is required")
	}

	var user model.User
	if err := h.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	if user.OTP == nil || *user.OTP != req.OTP {
		h.recordLogin(c, &user, false, model.FailureInvalidCredentials)
		return response.Unauthorized(c, "Invalid OTP")
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role, user.Username)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	h.recordLogin(c, &user, true, "")

	return response.SuccessWithMessage(c, "Login successful", LoginResponse{
		User: LoginUser{
			Email:    user.Email,
			Name:     user.Name,
			Username: user.Username,
			Role:     user.Role,
		},
		Token: token,
	})
}
