package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
)

// mockAccessTokenRepository is a mock implementation of AccessTokenRepository for testing.
type mockAccessTokenRepository struct {
	mock.Mock
}

func (m *mockAccessTokenRepository) Create(ctx context.Context, token *adminDomain.AccessToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockAccessTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.AccessToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminDomain.AccessToken), args.Error(1)
}

func (m *mockAccessTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *mockAccessTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*adminDomain.AccessToken, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*adminDomain.AccessToken), args.Error(1)
}

// mockTokenService is a mock implementation of service.TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken() (plainToken string, tokenHash string, error error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) HashToken(plainToken string) string {
	args := m.Called(plainToken)
	return args.String(0)
}
