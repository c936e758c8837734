// Package usecase implements business logic for site content management.
// Reads are public; every mutation is expected to arrive through an
// admin-gated path.
package usecase

import (
	"context"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
)

// ProjectRepository defines persistence operations for projects.
// Implementations must support transaction-aware operations via context propagation.
type ProjectRepository interface {
	Create(ctx context.Context, project *contentDomain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error)
	Update(ctx context.Context, project *contentDomain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ArticleRepository defines persistence operations for articles.
// Implementations must support transaction-aware operations via context propagation.
type ArticleRepository interface {
	Create(ctx context.Context, article *contentDomain.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error)
	Update(ctx context.Context, article *contentDomain.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title             string
	ShortDescription  string
	Description       string
	Overview          string
	Category          string
	Status            string
	Technologies      []string
	Features          []string
	GithubLink        string
	WebsiteLink       string
	DocumentationLink string
	ProjectDate       string
}

// ArticleInput carries the writable fields of an article.
type ArticleInput struct {
	Title   string
	Content string
}

// ProjectUseCase defines business operations on the project showcase.
type ProjectUseCase interface {
	// Create adds a new project. ProjectDate accepts YYYY-MM-DD and defaults
	// to today when empty.
	Create(ctx context.Context, input *ProjectInput) (*contentDomain.Project, error)

	// Get retrieves a project by ID.
	// Returns ErrProjectNotFound if no project matches.
	Get(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error)

	// Update replaces the writable fields of an existing project.
	// Returns ErrProjectNotFound if no project matches.
	Update(ctx context.Context, id uuid.UUID, input *ProjectInput) (*contentDomain.Project, error)

	// Delete removes a project.
	// Returns ErrProjectNotFound if no project matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns projects newest first.
	List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error)

	// Clear deletes every project and returns the number removed.
	Clear(ctx context.Context) (int64, error)
}

// ArticleUseCase defines business operations on published articles.
type ArticleUseCase interface {
	// Create publishes a new article.
	Create(ctx context.Context, input *ArticleInput) (*contentDomain.Article, error)

	// Get retrieves an article by ID.
	// Returns ErrArticleNotFound if no article matches.
	Get(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error)

	// Update replaces the writable fields of an existing article.
	// Returns ErrArticleNotFound if no article matches.
	Update(ctx context.Context, id uuid.UUID, input *ArticleInput) (*contentDomain.Article, error)

	// Delete removes an article.
	// Returns ErrArticleNotFound if no article matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns articles newest first.
	List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error)

	// Clear deletes every article and returns the number removed.
	Clear(ctx context.Context) (int64, error)
}
