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

// MySQLArticleRepository implements Article persistence for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLArticleRepository struct {
	db *sql.DB
}

// NewMySQLArticleRepository creates a new MySQL Article repository.
func NewMySQLArticleRepository(db *sql.DB) *MySQLArticleRepository {
	return &MySQLArticleRepository{db: db}
}

// Create inserts a new Article into the MySQL database.
func (m *MySQLArticleRepository) Create(ctx context.Context, article *contentDomain.Article) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO articles (id, title, content, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		article.ID.String(),
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

// GetByID retrieves an Article by ID from the MySQL database.
func (m *MySQLArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, content, created_at, updated_at FROM articles WHERE id = ?`

	var article contentDomain.Article
	err := querier.QueryRowContext(ctx, query, id.String()).Scan(
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

// Update modifies an existing Article in the MySQL database.
func (m *MySQLArticleRepository) Update(ctx context.Context, article *contentDomain.Article) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE articles
			  SET title = ?,
			  	  content = ?,
			  	  updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		article.Title,
		article.Content,
		article.UpdatedAt,
		article.ID.String(),
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

// Delete removes an Article by ID from the MySQL database.
func (m *MySQLArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM articles WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id.String())
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
func (m *MySQLArticleRepository) List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, content, created_at, updated_at
			  FROM articles
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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
func (m *MySQLArticleRepository) DeleteAll(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

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
