// Package http provides HTTP handlers for public site content.
// Reads are open to everyone; every mutating route is expected to sit behind
// the admin middleware.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trivalleytech/site-api/internal/content/http/dto"
	contentUseCase "github.com/trivalleytech/site-api/internal/content/usecase"
	"github.com/trivalleytech/site-api/internal/httputil"
)

// ProjectHandler handles HTTP requests for the project showcase.
type ProjectHandler struct {
	projectUseCase contentUseCase.ProjectUseCase
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler with required dependencies.
func NewProjectHandler(projectUseCase contentUseCase.ProjectUseCase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new project.
// POST /v1/projects - Admin only.
// Returns 201 Created with the stored project.
func (h *ProjectHandler) CreateHandler(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	project, err := h.projectUseCase.Create(c.Request.Context(), dto.ToProjectInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// GetHandler retrieves a project by ID.
// GET /v1/projects/:id - Public.
func (h *ProjectHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	project, err := h.projectUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// UpdateHandler replaces the writable fields of a project.
// PUT /v1/projects/:id - Admin only.
func (h *ProjectHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	project, err := h.projectUseCase.Update(c.Request.Context(), id, dto.ToProjectInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// DeleteHandler removes a project.
// DELETE /v1/projects/:id - Admin only.
// Returns 204 No Content on success.
func (h *ProjectHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.projectUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListHandler lists projects newest first.
// GET /v1/projects - Public.
// Supports offset and limit query parameters.
func (h *ProjectHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	projects, err := h.projectUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectsToListResponse(projects))
}

// parseIDParam parses the :id URL parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id parameter: %w", err)
	}
	return id, nil
}
