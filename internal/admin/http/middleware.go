// Package http provides HTTP middleware and handlers for admin access control.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
	"github.com/trivalleytech/site-api/internal/httputil"
)

// AdminMiddleware guards privileged routes with a Bearer admin token in the
// Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Resolves it through AccessGate.Check()
// 3. Aborts with 401 Unauthorized on any denial
//
// The gate is a pure yes/no decision: a missing header, a malformed header,
// an unknown token, an expired token, a revoked token, and a store failure
// all produce the same 401 response, so a probing caller learns nothing about
// which tokens exist.
//
// Usage:
//
//	router.POST("/v1/projects", AdminMiddleware(gate, logger), handler)
func AdminMiddleware(gate adminUseCase.AccessGate, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := extractBearerToken(c)
		if rawToken == "" {
			logger.Debug("admin access denied: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !gate.Check(c.Request.Context(), rawToken) {
			logger.Debug("admin access denied: token rejected")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractBearerToken returns the Bearer token from the Authorization header,
// or "" when the header is missing or malformed. The "bearer" scheme is
// matched case-insensitively.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}
