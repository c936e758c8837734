package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trivalleytech/site-api/internal/admin/http/dto"
	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// AccessHandler handles HTTP requests for admin access checks.
type AccessHandler struct {
	gate   adminUseCase.AccessGate
	logger *slog.Logger
}

// NewAccessHandler creates a new access handler with required dependencies.
func NewAccessHandler(gate adminUseCase.AccessGate, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		gate:   gate,
		logger: logger,
	}
}

// StatusHandler reports whether the presented token grants admin access.
// GET /v1/admin/access - Public.
// Always returns 200 OK with an authorized flag, so clients can probe their
// own saved token and discard it when it no longer works.
func (h *AccessHandler) StatusHandler(c *gin.Context) {
	rawToken := extractBearerToken(c)

	authorized := false
	if rawToken != "" {
		authorized = h.gate.Check(c.Request.Context(), rawToken)
	}

	c.JSON(http.StatusOK, dto.AccessStatusResponse{Authorized: authorized})
}
