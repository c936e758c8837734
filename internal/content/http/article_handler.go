package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trivalleytech/site-api/internal/content/http/dto"
	contentUseCase "github.com/trivalleytech/site-api/internal/content/usecase"
	"github.com/trivalleytech/site-api/internal/httputil"
)

// ArticleHandler handles HTTP requests for published articles.
type ArticleHandler struct {
	articleUseCase contentUseCase.ArticleUseCase
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler with required dependencies.
func NewArticleHandler(articleUseCase contentUseCase.ArticleUseCase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		logger:         logger,
	}
}

// CreateHandler publishes a new article.
// POST /v1/articles - Admin only.
// Returns 201 Created with the stored article.
func (h *ArticleHandler) CreateHandler(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	article, err := h.articleUseCase.Create(c.Request.Context(), dto.ToArticleInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// GetHandler retrieves an article by ID.
// GET /v1/articles/:id - Public.
func (h *ArticleHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	article, err := h.articleUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// UpdateHandler replaces the writable fields of an article.
// PUT /v1/articles/:id - Admin only.
func (h *ArticleHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	article, err := h.articleUseCase.Update(c.Request.Context(), id, dto.ToArticleInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// DeleteHandler removes an article.
// DELETE /v1/articles/:id - Admin only.
// Returns 204 No Content on success.
func (h *ArticleHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.articleUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListHandler lists articles newest first.
// GET /v1/articles - Public.
// Supports offset and limit query parameters.
func (h *ArticleHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	articles, err := h.articleUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapArticlesToListResponse(articles))
}
