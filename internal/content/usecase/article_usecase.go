package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/database"
)

// articleUseCase implements the ArticleUseCase interface.
type articleUseCase struct {
	txManager   database.TxManager
	articleRepo ArticleRepository
}

// NewArticleUseCase creates a new article use case.
func NewArticleUseCase(txManager database.TxManager, articleRepo ArticleRepository) ArticleUseCase {
	return &articleUseCase{
		txManager:   txManager,
		articleRepo: articleRepo,
	}
}

// Create publishes a new article.
func (u *articleUseCase) Create(ctx context.Context, input *ArticleInput) (*contentDomain.Article, error) {
	now := time.Now().UTC()

	article := &contentDomain.Article{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Get retrieves an article by ID.
func (u *articleUseCase) Get(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error) {
	return u.articleRepo.GetByID(ctx, id)
}

// Update replaces the writable fields of an existing article.
func (u *articleUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *ArticleInput,
) (*contentDomain.Article, error) {
	var updated *contentDomain.Article

	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		article, err := u.articleRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		article.Title = input.Title
		article.Content = input.Content
		article.UpdatedAt = time.Now().UTC()

		if err := u.articleRepo.Update(txCtx, article); err != nil {
			return err
		}

		updated = article
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an article.
func (u *articleUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.articleRepo.Delete(ctx, id)
}

// List returns articles newest first.
func (u *articleUseCase) List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error) {
	return u.articleRepo.List(ctx, offset, limit)
}

// Clear deletes every article and returns the number removed.
func (u *articleUseCase) Clear(ctx context.Context) (int64, error) {
	var count int64
	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		count, err = u.articleRepo.DeleteAll(txCtx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
