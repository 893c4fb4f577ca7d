package models

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ArticleID uint64    `gorm:"not null;index" json:"article_id"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Article Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	Author  User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
