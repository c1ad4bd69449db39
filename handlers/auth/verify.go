package auth

import (
	"strings"

	"github.com/codesmentors/codesmentors-api/model"
	authutil "github.com/codesmentors/codesmentors-api/utils/auth"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VerifyRequest represents an account verification request
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"OTP" validate:"required,len=6"`
}

// VerifiedUser is the payload returned once an account is verified
type VerifiedUser struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// VerifyAccount handles POST /user/account-verify. The OTP is consumed
// exactly once: a successful verification clears it.
func (h *AuthHandler) VerifyAccount(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
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

	if user.IsVerified {
		return response.Conflict(c, "User already verified")
	}

	if user.OTP == nil || *user.OTP != req.OTP {
		return response.BadRequest(c, "Invalid OTP")
	}

	user.IsVerified = true
	user.OTP = nil
	if err := h.db.Model(&user).Select("is_verified", "otp").Updates(map[string]interface{}{
		"is_verified": true,
		"otp":         nil,
	}).Error; err != nil {
		return response.InternalServerError(c, "Failed to verify account")
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role, user.Username)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.SuccessWithMessage(c, "Account verified", fiber.Map{
		"user": VerifiedUser{
			Email:    user.Email,
			Name:     user.Name,
			Username: user.Username,
			Token:    token,
		},
	})
}

// ResendOTPRequest represents a resend-otp request
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResendOTP handles POST /account/resend-otp. The previous code is
// overwritten unconditionally.
func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var req ResendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}

	var user model.User
	if err := h.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	otp := authutil.GenerateOTP()
	if err := h.db.Model(&user).Update("otp", otp).Error; err != nil {
		return response.InternalServerError(c, "Failed to regenerate OTP")
	}

	if err := h.mailer.SendOTP(user.Email, user.Name, otp); err != nil {
		return response.ErrorWithDetails(c, fiber.StatusInternalServerError,
			"Failed to send OTP", "INTERNAL_ERROR", err.Error())
	}

	return response.SuccessWithMessage(c, "OTP resent successfully", nil)
}
