package model

import (
	"time"

	"gorm.io/datatypes"
)

// Icon is an image reference with SEO alt text
type Icon struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

// SEO holds the meta tags attached to a content entity
type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	CanonicalURL    string   `json:"canonicalUrl,omitempty"`
}

// TopicRef is the denormalized {id, name, slug} reference a Technology keeps
// for each Topic created under it
type TopicRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Technology is the top level of the content hierarchy
type Technology struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Icon datatypes.JSONType[Icon] `json:"icon"`
	SEO  datatypes.JSONType[SEO]  `gorm:"column:seo" json:"seo"`

	// Denormalized child references, appended when a Topic is created
	// under this technology. Not a live join.
	Topics datatypes.JSONSlice[TopicRef] `json:"topics"`

	UsageCount  int64 `gorm:"default:0" json:"usage_count"`
	IsPublished bool  `gorm:"default:true;index" json:"isPublished"`

	CreatedBy datatypes.JSONType[Creator] `json:"createdBy"`
}

// TableName specifies the table name for Technology
func (Technology) TableName() string {
	return "technologies"
}
