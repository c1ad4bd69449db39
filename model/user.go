package model

import (
	"time"

	"gorm.io/datatypes"
)

// User roles
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
	RoleEditor  = "editor"
)

// User account statuses
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Avatar holds a user's profile picture reference
type Avatar struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// User represents a registered user in the system
type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // Never expose password in JSON

	// Verification state. OTP is single-use: cleared once the account is verified.
	OTP        *string `gorm:"type:varchar(6)" json:"-"`
	IsVerified bool    `gorm:"default:false" json:"is_verified"`
	IsBlocked  bool    `gorm:"default:false" json:"is_blocked"`
	Status     string  `gorm:"type:varchar(20);default:'active'" json:"status"` // active, inactive, suspended

	Role      string     `gorm:"type:varchar(20);default:'student'" json:"role"` // student, mentor, admin, editor
	LastLogin *time.Time `json:"last_login,omitempty"`
	Bio       string     `gorm:"type:varchar(250)" json:"bio,omitempty"`

	Avatar datatypes.JSONType[Avatar] `json:"avatar,omitempty"`

	// Relationships
	Comments     []Comment      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes        []Like         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	LoginHistory []LoginHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// SafeProfile is the user payload returned by auth endpoints.
// Credential and OTP are never part of it.
type SafeProfile struct {
	ID       uint   `json:"_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Safe returns the serializable profile for a user
func (u *User) Safe() SafeProfile {
	return SafeProfile{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Username: u.Username,
	}
}

// Creator is a denormalized snapshot of the user who created a content
// entity, taken at write time and never refreshed.
type Creator struct {
	ID     uint          `json:"id"`
	Author CreatorAuthor `json:"author"`
}

// CreatorAuthor carries the profile fields frozen into the snapshot
type CreatorAuthor struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Icon     string `json:"icon,omitempty"`
}

// Snapshot freezes the user's current profile into a creator snapshot
func (u *User) Snapshot() Creator {
	return Creator{
		ID: u.ID,
		Author: CreatorAuthor{
			Name:     u.Name,
			Email:    u.Email,
			Username: u.Username,
		},
	}
}
