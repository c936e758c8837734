package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
)

var articleColumns = []string{"id", "title", "content", "created_at", "updated_at"}

func testArticle() *contentDomain.Article {
	now := time.Now().UTC()
	return &contentDomain.Article{
		ID:        uuid.New(),
		Title:     "Our Summer Coding Camp Recap",
		Content:   "This summer we taught thirty students the basics of web development.",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMySQLArticleRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		article := testArticle()
		mock.ExpectExec("INSERT INTO articles").
			WithArgs(article.ID.String(), article.Title, article.Content, article.CreatedAt, article.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLArticleRepository(db)
		err = repo.Create(context.Background(), article)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_WriteFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO articles").
			WillReturnError(assert.AnError)

		repo := NewMySQLArticleRepository(db)
		err = repo.Create(context.Background(), testArticle())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create article")
	})
}

func TestMySQLArticleRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		article := testArticle()
		rows := sqlmock.NewRows(articleColumns).
			AddRow(article.ID.String(), article.Title, article.Content, article.CreatedAt, article.UpdatedAt)

		mock.ExpectQuery("SELECT (.+) FROM articles WHERE id").
			WithArgs(article.ID.String()).
			WillReturnRows(rows)

		repo := NewMySQLArticleRepository(db)
		got, err := repo.GetByID(context.Background(), article.ID)

		require.NoError(t, err)
		assert.Equal(t, article.ID, got.ID)
		assert.Equal(t, article.Title, got.Title)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM articles WHERE id").
			WithArgs(id.String()).
			WillReturnRows(sqlmock.NewRows(articleColumns))

		repo := NewMySQLArticleRepository(db)
		got, err := repo.GetByID(context.Background(), id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, contentDomain.ErrArticleNotFound)
	})
}

func TestMySQLArticleRepository_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE articles").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLArticleRepository(db)
		assert.NoError(t, repo.Update(context.Background(), testArticle()))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE articles").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMySQLArticleRepository(db)
		assert.ErrorIs(t, repo.Update(context.Background(), testArticle()), contentDomain.ErrArticleNotFound)
	})
}

func TestMySQLArticleRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectExec("DELETE FROM articles WHERE id").
			WithArgs(id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLArticleRepository(db)
		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.New()
		mock.ExpectExec("DELETE FROM articles WHERE id").
			WithArgs(id.String()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMySQLArticleRepository(db)
		assert.ErrorIs(t, repo.Delete(context.Background(), id), contentDomain.ErrArticleNotFound)
	})
}

func TestMySQLArticleRepository_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		first := testArticle()
		second := testArticle()
		rows := sqlmock.NewRows(articleColumns).
			AddRow(first.ID.String(), first.Title, first.Content, first.CreatedAt, first.UpdatedAt).
			AddRow(second.ID.String(), second.Title, second.Content, second.CreatedAt.Add(-time.Hour), second.UpdatedAt)

		mock.ExpectQuery("SELECT (.+) FROM articles").
			WithArgs(50, 0).
			WillReturnRows(rows)

		repo := NewMySQLArticleRepository(db)
		articles, err := repo.List(context.Background(), 0, 50)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, first.ID, articles[0].ID)
	})
}

func TestMySQLArticleRepository_DeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM articles").
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewMySQLArticleRepository(db)
	count, err := repo.DeleteAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
