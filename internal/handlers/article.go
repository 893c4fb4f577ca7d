package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yonchee/conduit-api/internal/dto"
	apierrors "github.com/yonchee/conduit-api/internal/errors"
	"github.com/yonchee/conduit-api/internal/middleware"
	"github.com/yonchee/conduit-api/internal/services"
)

// ArticleHandler coordinates article-related HTTP handlers.
type ArticleHandler struct {
	articleService *services.ArticleService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// CreateArticle creates a new article authored by the current user.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateArticleRequest struct {
		Article struct {
			Title       string   `json:"title" binding:"required"`
			Description string   `json:"description"`
			Body        string   `json:"body"`
			TagList     []string `json:"tagList"`
		} `json:"article" binding:"required"`
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.CreateArticle(userID, services.CreateArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArticleResponse(*article))
}

// GetArticle returns an article by slug. Public route.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Param("slug"))
	if err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(*article))
}

// UpdateArticle applies a partial update to an article owned by the caller.
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateArticleRequest struct {
		Article struct {
			Title       *string  `json:"title"`
			Description *string  `json:"description"`
			Body        *string  `json:"body"`
			TagList     []string `json:"tagList"`
		} `json:"article"`
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.UpdateArticle(c.Param("slug"), userID, services.UpdateArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(*article))
}

// DeleteArticle removes an article owned by the caller.
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.articleService.DeleteArticle(c.Param("slug"), userID); err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article deleted",
	})
}

func respondArticleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrBodyRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrArticleNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotArticleAuthor),
		errors.Is(err, services.ErrNotCommentAuthor):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
