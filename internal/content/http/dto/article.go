package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/content/usecase"
	appValidation "github.com/trivalleytech/site-api/internal/validation"
)

// ArticleRequest represents the API request for creating or updating an article.
type ArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate validates the ArticleRequest using the jellydator/validation library.
func (r *ArticleRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToArticleInput converts an ArticleRequest DTO to a use case input.
func ToArticleInput(req ArticleRequest) *usecase.ArticleInput {
	return &usecase.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
	}
}

// ArticleResponse represents the API response for an article.
type ArticleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToArticleResponse converts a domain Article to an ArticleResponse DTO.
func ToArticleResponse(article *contentDomain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        article.ID.String(),
		Title:     article.Title,
		Content:   article.Content,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

// ListArticlesResponse represents a paginated list of articles in API responses.
type ListArticlesResponse struct {
	Data []ArticleResponse `json:"data"`
}

// MapArticlesToListResponse converts a slice of domain articles to a list response.
func MapArticlesToListResponse(articles []*contentDomain.Article) ListArticlesResponse {
	data := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		data = append(data, ToArticleResponse(article))
	}
	return ListArticlesResponse{Data: data}
}
