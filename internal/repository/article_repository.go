package repository

import (
	"gorm.io/gorm"

	"github.com/yonchee/conduit-api/internal/models"
)

// GormArticleRepository is a GORM implementation of ArticleRepository
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &GormArticleRepository{db: db}
}

// Create creates a new article
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// FindBySlug finds an article by slug with optional preloading
func (r *GormArticleRepository) FindBySlug(slug string, preload ...string) (*models.Article, error) {
	var article models.Article
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}

	return &article, nil
}

// SlugExists reports whether an article with the given slug exists
func (r *GormArticleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an article
func (r *GormArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete removes an article and its comments in one transaction
func (r *GormArticleRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Article{}, id).Error
	})
}
