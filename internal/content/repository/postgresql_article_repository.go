package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/database"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

// PostgreSQLArticleRepository implements Article persistence for PostgreSQL.
type PostgreSQLArticleRepository struct {
	db *sql.DB
}

// NewPostgreSQLArticleRepository creates a new PostgreSQL Article repository.
func NewPostgreSQLArticleRepository(db *sql.DB) *PostgreSQLArticleRepository {
	return &PostgreSQLArticleRepository{db: db}
}

// Create inserts a new Article into the PostgreSQL database.
func (p *PostgreSQLArticleRepository) Create(ctx context.Context, article *contentDomain.Article) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO articles (id, title, content, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		article.ID,
		article.Title,
		article.Content,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create article")
	}
	return nil
}

// GetByID retrieves an Article by ID from the PostgreSQL database.
func (p *PostgreSQLArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content, created_at, updated_at FROM articles WHERE id = $1`

	var article contentDomain.Article
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contentDomain.ErrArticleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get article")
	}
	return &article, nil
}

// Update modifies an existing Article in the PostgreSQL database.
func (p *PostgreSQLArticleRepository) Update(ctx context.Context, article *contentDomain.Article) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE articles
			  SET title = $1,
			  	  content = $2,
			  	  updated_at = $3
			  WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		article.Title,
		article.Content,
		article.UpdatedAt,
		article.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update article")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return contentDomain.ErrArticleNotFound
	}
	return nil
}

// Delete removes an Article by ID from the PostgreSQL database.
func (p *PostgreSQLArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM articles WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete article")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return contentDomain.ErrArticleNotFound
	}
	return nil
}

// List retrieves Articles ordered by creation time (newest first) with pagination.
func (p *PostgreSQLArticleRepository) List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content, created_at, updated_at
			  FROM articles
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list articles")
	}
	defer func() { _ = rows.Close() }()

	var articles []*contentDomain.Article
	for rows.Next() {
		var article contentDomain.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan article")
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate articles")
	}
	return articles, nil
}

// DeleteAll removes every Article and returns the number of deleted rows.
func (p *PostgreSQLArticleRepository) DeleteAll(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM articles`)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete all articles")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}
