package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

const testTokenHash = "7d865e959b2466918c9863afca942d0fb89d7c9ac0c99bafc3749504ded97730"

func TestNewPostgreSQLAccessTokenRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLAccessTokenRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLAccessTokenRepository{}, repo)
}

func TestPostgreSQLAccessTokenRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now().UTC()
		token := &adminDomain.AccessToken{
			TokenHash: testTokenHash,
			ExpiresAt: now.Add(365 * 24 * time.Hour),
			Revoked:   false,
			CreatedAt: now,
		}

		mock.ExpectExec("INSERT INTO admin_access_tokens").
			WithArgs(token.TokenHash, token.ExpiresAt, token.Revoked, token.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLAccessTokenRepository(db)
		err = repo.Create(context.Background(), token)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_WriteFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO admin_access_tokens").
			WillReturnError(assert.AnError)

		repo := NewPostgreSQLAccessTokenRepository(db)
		err = repo.Create(context.Background(), &adminDomain.AccessToken{TokenHash: testTokenHash})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create access token")
	})
}

func TestPostgreSQLAccessTokenRepository_GetByTokenHash(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now().UTC()
		expiresAt := now.Add(24 * time.Hour)

		rows := sqlmock.NewRows([]string{"token_hash", "expires_at", "revoked", "created_at"}).
			AddRow(testTokenHash, expiresAt, false, now)

		mock.ExpectQuery("SELECT token_hash, expires_at, revoked, created_at").
			WithArgs(testTokenHash).
			WillReturnRows(rows)

		repo := NewPostgreSQLAccessTokenRepository(db)
		token, err := repo.GetByTokenHash(context.Background(), testTokenHash)

		require.NoError(t, err)
		assert.Equal(t, testTokenHash, token.TokenHash)
		assert.WithinDuration(t, expiresAt, token.ExpiresAt, time.Second)
		assert.False(t, token.Revoked)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT token_hash, expires_at, revoked, created_at").
			WithArgs(testTokenHash).
			WillReturnRows(sqlmock.NewRows([]string{"token_hash", "expires_at", "revoked", "created_at"}))

		repo := NewPostgreSQLAccessTokenRepository(db)
		token, err := repo.GetByTokenHash(context.Background(), testTokenHash)

		assert.Nil(t, token)
		assert.ErrorIs(t, err, adminDomain.ErrAccessTokenNotFound)
	})

	t.Run("Error_QueryFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT token_hash, expires_at, revoked, created_at").
			WillReturnError(assert.AnError)

		repo := NewPostgreSQLAccessTokenRepository(db)
		token, err := repo.GetByTokenHash(context.Background(), testTokenHash)

		assert.Nil(t, token)
		assert.Error(t, err)
		assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestPostgreSQLAccessTokenRepository_Revoke(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE admin_access_tokens SET revoked = TRUE").
			WithArgs(testTokenHash).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLAccessTokenRepository(db)
		err = repo.Revoke(context.Background(), testTokenHash)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NoMatchingRecord", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE admin_access_tokens SET revoked = TRUE").
			WithArgs(testTokenHash).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLAccessTokenRepository(db)
		err = repo.Revoke(context.Background(), testTokenHash)

		assert.ErrorIs(t, err, adminDomain.ErrAccessTokenNotFound)
	})

	t.Run("Success_RevokeIsIdempotentOnAlreadyRevokedRecord", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// An already revoked row still matches the WHERE clause; the update
		// simply rewrites true over true.
		mock.ExpectExec("UPDATE admin_access_tokens SET revoked = TRUE").
			WithArgs(testTokenHash).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLAccessTokenRepository(db)
		err = repo.Revoke(context.Background(), testTokenHash)

		assert.NoError(t, err)
	})
}

func TestPostgreSQLAccessTokenRepository_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"token_hash", "expires_at", "revoked", "created_at"}).
			AddRow(testTokenHash, now.Add(time.Hour), false, now).
			AddRow("another-hash", now.Add(-time.Hour), true, now.Add(-48*time.Hour))

		mock.ExpectQuery("SELECT token_hash, expires_at, revoked, created_at").
			WithArgs(0, 50).
			WillReturnRows(rows)

		repo := NewPostgreSQLAccessTokenRepository(db)
		tokens, err := repo.List(context.Background(), 0, 50)

		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, testTokenHash, tokens[0].TokenHash)
		assert.True(t, tokens[1].Revoked)
	})

	t.Run("Success_EmptyStore", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT token_hash, expires_at, revoked, created_at").
			WithArgs(0, 50).
			WillReturnRows(sqlmock.NewRows([]string{"token_hash", "expires_at", "revoked", "created_at"}))

		repo := NewPostgreSQLAccessTokenRepository(db)
		tokens, err := repo.List(context.Background(), 0, 50)

		require.NoError(t, err)
		assert.Empty(t, tokens)
	})
}
