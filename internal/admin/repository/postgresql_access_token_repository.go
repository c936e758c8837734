// Package repository implements AccessToken persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	"github.com/trivalleytech/site-api/internal/database"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

// PostgreSQLAccessTokenRepository implements AccessToken persistence for PostgreSQL.
// Uses transaction support via database.GetTx().
type PostgreSQLAccessTokenRepository struct {
	db *sql.DB
}

// Create inserts a new AccessToken record. The token hash is the primary key;
// inserting a duplicate hash fails. Returns an error if database insertion fails.
func (p *PostgreSQLAccessTokenRepository) Create(ctx context.Context, token *adminDomain.AccessToken) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO admin_access_tokens (token_hash, expires_at, revoked, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.TokenHash,
		token.ExpiresAt,
		token.Revoked,
		token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create access token")
	}
	return nil
}

// GetByTokenHash retrieves an AccessToken by its hash.
// Returns ErrAccessTokenNotFound if no record matches, or an error if the
// database query fails.
func (p *PostgreSQLAccessTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.AccessToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT token_hash, expires_at, revoked, created_at
			  FROM admin_access_tokens WHERE token_hash = $1`

	var token adminDomain.AccessToken

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.TokenHash,
		&token.ExpiresAt,
		&token.Revoked,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, adminDomain.ErrAccessTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get access token")
	}

	return &token, nil
}

// Revoke flips the revoked flag of the record matching the hash. The flag is
// monotonic: a revoked record is never un-revoked, and no other column is
// touched. Returns ErrAccessTokenNotFound if no record matches.
func (p *PostgreSQLAccessTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE admin_access_tokens SET revoked = TRUE WHERE token_hash = $1`

	result, err := querier.ExecContext(ctx, query, tokenHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke access token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read revoke result")
	}
	if affected == 0 {
		return adminDomain.ErrAccessTokenNotFound
	}
	return nil
}

// List returns the most recently issued records, newest first. Used by
// operator tooling for audit; never by the access gate.
func (p *PostgreSQLAccessTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*adminDomain.AccessToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT token_hash, expires_at, revoked, created_at
			  FROM admin_access_tokens
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list access tokens")
	}
	defer rows.Close()

	tokens := []*adminDomain.AccessToken{}
	for rows.Next() {
		var token adminDomain.AccessToken
		if err := rows.Scan(
			&token.TokenHash,
			&token.ExpiresAt,
			&token.Revoked,
			&token.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan access token")
		}
		tokens = append(tokens, &token)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate access tokens")
	}

	return tokens, nil
}

// NewPostgreSQLAccessTokenRepository creates a new PostgreSQL AccessToken repository.
func NewPostgreSQLAccessTokenRepository(db *sql.DB) *PostgreSQLAccessTokenRepository {
	return &PostgreSQLAccessTokenRepository{db: db}
}
