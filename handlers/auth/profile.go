package auth

import (
	"time"

	"github.com/codesmentors/codesmentors-api/utils/middleware"
	"github.com/codesmentors/codesmentors-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// SessionInfo describes the bearer session attached to a profile response
type SessionInfo struct {
	Role      string     `json:"role"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Me handles GET /user/me: the authenticated user's profile plus the
// session the token carries.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	session := SessionInfo{Role: claims.Role}
	if claims.IssuedAt != nil {
		session.IssuedAt = &claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = &claims.ExpiresAt.Time
	}

	return response.Success(c, fiber.Map{
		"user":    user.Safe(),
		"session": session,
	})
}
