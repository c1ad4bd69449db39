package model

import (
	"time"

	"gorm.io/datatypes"
)

// ParentRef is the denormalized {id, name, slug} snapshot a Tutorial keeps
// of its parent Topic and Technology. Not a live join.
type ParentRef struct {
	ID   uint   `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FeaturedImage is the tutorial's hero image
type FeaturedImage struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Tutorial is a single piece of learning content under a topic
type Tutorial struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title   string `gorm:"not null;index" json:"title"`
	Slug    string `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt string `gorm:"type:varchar(160)" json:"excerpt"`
	Content string `gorm:"type:text;not null" json:"content"`

	Topic      datatypes.JSONType[ParentRef] `gorm:"column:topic" json:"topic"`
	Technology datatypes.JSONType[ParentRef] `gorm:"column:technology" json:"technology"`

	SEO datatypes.JSONType[SEO] `gorm:"column:seo" json:"seo"`

	FeaturedImage datatypes.JSONType[FeaturedImage] `json:"featuredImage"`
	OgImage       string                            `json:"ogImage,omitempty"`

	Views       int64 `gorm:"default:0" json:"views"`
	ReadingTime int   `gorm:"default:5" json:"readingTime"` // minutes, ceil(words/200)
	IsPublished bool  `gorm:"default:true" json:"isPublished"`

	CreatedBy datatypes.JSONType[Creator] `json:"createdBy"`

	// Relationships
	Comments []Comment `gorm:"foreignKey:TutorialID;constraint:OnDelete:CASCADE" json:"-"`
}
