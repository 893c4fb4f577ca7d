package dto

import (
	"time"

	"github.com/yonchee/conduit-api/internal/models"
)

// ArticleDTO represents an article in API responses
type ArticleDTO struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Body        string      `json:"body"`
	TagList     []string    `json:"tagList"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Author      *ProfileDTO `json:"author,omitempty"`
}

// ArticleResponse wraps an article in the envelope the API promises
type ArticleResponse struct {
	Article ArticleDTO `json:"article"`
}

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID        uint64      `json:"id"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    *ProfileDTO `json:"author,omitempty"`
}

// CommentResponse wraps a single comment
type CommentResponse struct {
	Comment CommentDTO `json:"comment"`
}

// CommentsResponse wraps a comment list
type CommentsResponse struct {
	Comments []CommentDTO `json:"comments"`
}

// ToArticleDTO converts an Article model to ArticleDTO
func ToArticleDTO(article models.Article) ArticleDTO {
	dto := ArticleDTO{
		Slug:        article.Slug,
		Title:       article.Title,
		Description: article.Description,
		Body:        article.Body,
		TagList:     article.TagList,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}

	if dto.TagList == nil {
		dto.TagList = []string{}
	}

	// Include author if preloaded
	if article.Author.ID != 0 {
		author := ToProfileResponse(article.Author).Profile
		dto.Author = &author
	}

	return dto
}

// ToArticleResponse wraps an Article model in its response envelope
func ToArticleResponse(article models.Article) ArticleResponse {
	return ArticleResponse{Article: ToArticleDTO(article)}
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	// Include author if preloaded
	if comment.Author.ID != 0 {
		author := ToProfileResponse(comment.Author).Profile
		dto.Author = &author
	}

	return dto
}

// ToCommentResponse wraps a Comment model in its response envelope
func ToCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{Comment: ToCommentDTO(comment)}
}

// ToCommentsResponse converts a slice of comments to CommentsResponse
func ToCommentsResponse(comments []models.Comment) CommentsResponse {
	items := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		items[i] = ToCommentDTO(comment)
	}
	return CommentsResponse{Comments: items}
}
