package models

import (
	"time"
)

type Article struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Body        string    `gorm:"type:text" json:"body"`
	TagList     []string  `gorm:"serializer:json;type:text" json:"tag_list"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:ArticleID" json:"comments,omitempty"`
}
