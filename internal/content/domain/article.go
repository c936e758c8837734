package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/trivalleytech/site-api/internal/errors"
)

// Article represents a published article.
type Article struct {
	// ID is the unique identifier for the article.
	ID uuid.UUID
	// Title is the article headline.
	Title string
	// Content is the article body.
	Content string
	// CreatedAt is the UTC timestamp when the article was published.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
}

// ErrArticleNotFound indicates the requested article does not exist.
var ErrArticleNotFound = errors.Wrap(errors.ErrNotFound, "article not found")
