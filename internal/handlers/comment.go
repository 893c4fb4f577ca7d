package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yonchee/conduit-api/internal/dto"
	apierrors "github.com/yonchee/conduit-api/internal/errors"
	"github.com/yonchee/conduit-api/internal/middleware"
	"github.com/yonchee/conduit-api/internal/services"
)

// CommentHandler coordinates comment-related HTTP handlers.
type CommentHandler struct {
	articleService *services.ArticleService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(articleService *services.ArticleService) *CommentHandler {
	return &CommentHandler{
		articleService: articleService,
	}
}

// AddComment attaches a comment to the article at slug.
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddCommentRequest struct {
		Comment struct {
			Body string `json:"body" binding:"required"`
		} `json:"comment" binding:"required"`
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.articleService.AddComment(c.Param("slug"), userID, req.Comment.Body)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(*comment))
}

// GetComments lists an article's comments, newest first. Public route.
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.articleService.GetComments(c.Param("slug"))
	if err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentsResponse(comments))
}

// DeleteComment removes a comment owned by the caller.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.articleService.DeleteComment(c.Param("slug"), commentID, userID); err != nil {
		respondArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment deleted",
	})
}
