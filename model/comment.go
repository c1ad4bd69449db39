package model

import "time"

// Comment is a reader's comment on a tutorial
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint   `gorm:"not null;index" json:"user"`
	TutorialID uint   `gorm:"not null;index" json:"tutorial"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Likes      int64  `gorm:"default:0" json:"likes"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Tutorial Tutorial `gorm:"foreignKey:TutorialID" json:"-"`
}

// Like is a join record between a user and a comment. Uniqueness per
// (user, comment) is not enforced; duplicate likes are possible.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint `gorm:"not null;index" json:"user"`
	CommentID uint `gorm:"not null;index" json:"comment"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"-"`
}
