package model

import (
	"time"

	"gorm.io/datatypes"
)

// Login failure reasons
const (
	FailureInvalidCredentials = "invalid_credentials"
	FailureAccountBlocked     = "account_blocked"
	FailureAccountNotVerified = "account_not_verified"
	FailureOther              = "other"
)

// Location is the coarse geo information attached to a login attempt
type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
}

// LoginHistory records a single login attempt with its outcome.
// Rows are append-only; updates happen only through admin corrections.
type LoginHistory struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint      `gorm:"not null;index:idx_login_user_time" json:"user"`
	LoginTime time.Time `gorm:"not null;index:idx_login_user_time,sort:desc" json:"loginTime"`

	IPAddress  string `gorm:"type:varchar(45);not null;index" json:"ipAddress"`
	UserAgent  string `gorm:"type:text" json:"userAgent,omitempty"`
	DeviceInfo string `gorm:"type:varchar(255)" json:"deviceInfo,omitempty"`

	Location datatypes.JSONType[Location] `json:"location"`

	Success       bool    `gorm:"default:true" json:"success"`
	FailureReason *string `gorm:"type:varchar(30)" json:"failureReason,omitempty"` // invalid_credentials, account_blocked, account_not_verified, other

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for LoginHistory
func (LoginHistory) TableName() string {
	return "login_histories"
}
