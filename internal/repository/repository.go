package repository

import (
	"github.com/yonchee/conduit-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// EmailTaken reports whether a user other than excludeID already uses email
	EmailTaken(email string, excludeID uint64) (bool, error)

	// UsernameTaken reports whether a user other than excludeID already uses username
	UsernameTaken(username string, excludeID uint64) (bool, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	// Create creates a new article
	Create(article *models.Article) error

	// FindBySlug finds an article by slug with optional preloading
	FindBySlug(slug string, preload ...string) (*models.Article, error)

	// SlugExists reports whether an article with the given slug exists
	SlugExists(slug string) (bool, error)

	// Update persists changes to an article
	Update(article *models.Article) error

	// Delete removes an article and its comments in one transaction
	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.Comment, error)

	// ListByArticleID lists an article's comments, newest first
	ListByArticleID(articleID uint64) ([]models.Comment, error)

	// Delete removes a comment
	Delete(id uint64) error
}
