package model

import (
	"time"

	"gorm.io/datatypes"
)

// Topic groups tutorials under a technology
type Topic struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Slug         string `gorm:"uniqueIndex;not null" json:"slug"`
	TechnologyID uint   `gorm:"not null;index" json:"technology_id"`
	Description  string `gorm:"type:text" json:"description"`

	SEO datatypes.JSONType[SEO] `gorm:"column:seo" json:"seo"`

	// Tutorial ids published under this topic
	Tutorials datatypes.JSONSlice[uint] `json:"tutorials"`

	Icon    datatypes.JSONType[Icon] `json:"icon"`
	OgImage string                   `json:"ogImage,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedBy datatypes.JSONType[Creator] `json:"createdBy"`

	// Relationships
	Technology Technology `gorm:"foreignKey:TechnologyID" json:"-"`
}
