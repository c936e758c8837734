package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/metrics"
)

// projectUseCaseWithMetrics decorates ProjectUseCase with metrics instrumentation.
type projectUseCaseWithMetrics struct {
	next    ProjectUseCase
	metrics metrics.BusinessMetrics
}

// NewProjectUseCaseWithMetrics wraps a ProjectUseCase with metrics recording.
func NewProjectUseCaseWithMetrics(useCase ProjectUseCase, m metrics.BusinessMetrics) ProjectUseCase {
	return &projectUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *projectUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "content", operation, status)
	p.metrics.RecordDuration(ctx, "content", operation, time.Since(start), status)
}

func (p *projectUseCaseWithMetrics) Create(ctx context.Context, input *ProjectInput) (*contentDomain.Project, error) {
	start := time.Now()
	project, err := p.next.Create(ctx, input)
	p.record(ctx, "project_create", start, err)
	return project, err
}

func (p *projectUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error) {
	start := time.Now()
	project, err := p.next.Get(ctx, id)
	p.record(ctx, "project_get", start, err)
	return project, err
}

func (p *projectUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *ProjectInput,
) (*contentDomain.Project, error) {
	start := time.Now()
	project, err := p.next.Update(ctx, id, input)
	p.record(ctx, "project_update", start, err)
	return project, err
}

func (p *projectUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, id)
	p.record(ctx, "project_delete", start, err)
	return err
}

func (p *projectUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error) {
	start := time.Now()
	projects, err := p.next.List(ctx, offset, limit)
	p.record(ctx, "project_list", start, err)
	return projects, err
}

func (p *projectUseCaseWithMetrics) Clear(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := p.next.Clear(ctx)
	p.record(ctx, "project_clear", start, err)
	return count, err
}

// articleUseCaseWithMetrics decorates ArticleUseCase with metrics instrumentation.
type articleUseCaseWithMetrics struct {
	next    ArticleUseCase
	metrics metrics.BusinessMetrics
}

// NewArticleUseCaseWithMetrics wraps an ArticleUseCase with metrics recording.
func NewArticleUseCaseWithMetrics(useCase ArticleUseCase, m metrics.BusinessMetrics) ArticleUseCase {
	return &articleUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *articleUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "content", operation, status)
	a.metrics.RecordDuration(ctx, "content", operation, time.Since(start), status)
}

func (a *articleUseCaseWithMetrics) Create(ctx context.Context, input *ArticleInput) (*contentDomain.Article, error) {
	start := time.Now()
	article, err := a.next.Create(ctx, input)
	a.record(ctx, "article_create", start, err)
	return article, err
}

func (a *articleUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error) {
	start := time.Now()
	article, err := a.next.Get(ctx, id)
	a.record(ctx, "article_get", start, err)
	return article, err
}

func (a *articleUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *ArticleInput,
) (*contentDomain.Article, error) {
	start := time.Now()
	article, err := a.next.Update(ctx, id, input)
	a.record(ctx, "article_update", start, err)
	return article, err
}

func (a *articleUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, id)
	a.record(ctx, "article_delete", start, err)
	return err
}

func (a *articleUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error) {
	start := time.Now()
	articles, err := a.next.List(ctx, offset, limit)
	a.record(ctx, "article_list", start, err)
	return articles, err
}

func (a *articleUseCaseWithMetrics) Clear(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := a.next.Clear(ctx)
	a.record(ctx, "article_clear", start, err)
	return count, err
}
