package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yonchee/conduit-api/internal/models"
	"github.com/yonchee/conduit-api/internal/repository"
	"github.com/yonchee/conduit-api/internal/utils"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotArticleAuthor = errors.New("only the article author can perform this action")
	ErrNotCommentAuthor = errors.New("only the comment author can perform this action")
	ErrTitleRequired    = errors.New("title is required")
	ErrBodyRequired     = errors.New("body is required")
)

// ArticleService handles article and comment business logic. Every mutation
// checks existence first and authorship second, in that order, so a missing
// resource never leaks through a different error kind.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, commentRepo repository.CommentRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

// CreateArticleInput represents input for creating an article.
type CreateArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// UpdateArticleInput carries the optional fields of an article update. Nil
// means the field is left untouched.
type UpdateArticleInput struct {
	Title       *string
	Description *string
	Body        *string
	TagList     []string
}

// CreateArticle persists a new article authored by authorID. Titles that
// derive an already-taken slug get a numeric suffix instead of colliding.
func (s *ArticleService) CreateArticle(authorID uint64, input CreateArticleInput) (*models.Article, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	slug, err := s.uniqueSlug(input.Title)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Slug:        slug,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		TagList:     input.TagList,
		AuthorID:    authorID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return s.articleRepo.FindBySlug(article.Slug, "Author")
}

// GetArticle retrieves an article by slug. Public, no caller identity needed.
func (s *ArticleService) GetArticle(slug string) (*models.Article, error) {
	article, err := s.articleRepo.FindBySlug(slug, "Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return article, nil
}

// UpdateArticle applies a partial update after the ownership gate. A title
// change regenerates the slug.
func (s *ArticleService) UpdateArticle(slug string, callerID uint64, input UpdateArticleInput) (*models.Article, error) {
	article, err := s.findForWrite(slug, callerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != article.Title {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		article.Title = *input.Title
		// A retitle that derives the article's own slug keeps it as is.
		if utils.GenerateSlug(*input.Title) != article.Slug {
			newSlug, err := s.uniqueSlug(*input.Title)
			if err != nil {
				return nil, err
			}
			article.Slug = newSlug
		}
	}

	if input.Description != nil {
		article.Description = *input.Description
	}
	if input.Body != nil {
		article.Body = *input.Body
	}
	if input.TagList != nil {
		article.TagList = input.TagList
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return s.articleRepo.FindBySlug(article.Slug, "Author")
}

// DeleteArticle removes an article and its comments after the ownership gate.
func (s *ArticleService) DeleteArticle(slug string, callerID uint64) error {
	article, err := s.findForWrite(slug, callerID)
	if err != nil {
		return err
	}

	if err := s.articleRepo.Delete(article.ID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// AddComment attaches a comment to an existing article. Any authenticated
// user may comment; there is no ownership gate on creation.
func (s *ArticleService) AddComment(slug string, authorID uint64, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrBodyRequired
	}

	article, err := s.GetArticle(slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  authorID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return s.commentRepo.FindByID(comment.ID)
}

// GetComments lists an article's comments, newest first.
func (s *ArticleService) GetComments(slug string) ([]models.Comment, error) {
	article, err := s.GetArticle(slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByArticleID(article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment after checking it exists, belongs to the
// article at slug, and is owned by the caller.
func (s *ArticleService) DeleteComment(slug string, commentID, callerID uint64) error {
	article, err := s.GetArticle(slug)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to find comment: %w", err)
	}

	// A comment id from an unrelated article is treated as absent.
	if comment.ArticleID != article.ID {
		return ErrCommentNotFound
	}

	if comment.AuthorID != callerID {
		return ErrNotCommentAuthor
	}

	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// findForWrite resolves slug and applies the ownership gate, existence first.
func (s *ArticleService) findForWrite(slug string, callerID uint64) (*models.Article, error) {
	article, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	if article.AuthorID != callerID {
		return nil, ErrNotArticleAuthor
	}

	return article, nil
}

// uniqueSlug derives a slug from title, appending -2, -3, ... when the base
// form is taken. The unique index on slug remains the backstop for races.
func (s *ArticleService) uniqueSlug(title string) (string, error) {
	base := utils.GenerateSlug(title)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.articleRepo.SlugExists(slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
