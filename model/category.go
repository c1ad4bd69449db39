package model

import (
	"time"

	"gorm.io/datatypes"
)

// Category is a flat grouping label for site navigation, independent of the
// technology hierarchy
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Icon datatypes.JSONType[Icon] `json:"icon"`

	IsPublished bool `gorm:"default:true;index" json:"isPublished"`

	CreatedBy datatypes.JSONType[Creator] `json:"createdBy"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
