package domain

import (
	"github.com/trivalleytech/site-api/internal/errors"
)

// Admin access errors.
var (
	// ErrAccessTokenNotFound indicates no record matches the presented token hash.
	ErrAccessTokenNotFound = errors.Wrap(errors.ErrNotFound, "access token not found")
)
