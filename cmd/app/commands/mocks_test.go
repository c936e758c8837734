package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	contentUseCase "github.com/trivalleytech/site-api/internal/content/usecase"
)

type mockTokenAuthority struct {
	mock.Mock
}

func (m *mockTokenAuthority) Issue(ctx context.Context, expiresInDays int) (string, error) {
	args := m.Called(ctx, expiresInDays)
	return args.String(0), args.Error(1)
}

func (m *mockTokenAuthority) Revoke(ctx context.Context, plainToken string) error {
	args := m.Called(ctx, plainToken)
	return args.Error(0)
}

func (m *mockTokenAuthority) List(ctx context.Context, offset, limit int) ([]*adminDomain.AccessToken, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*adminDomain.AccessToken), args.Error(1)
}

type mockAccessGate struct {
	mock.Mock
}

func (m *mockAccessGate) Check(ctx context.Context, rawToken string) bool {
	args := m.Called(ctx, rawToken)
	return args.Bool(0)
}

type mockProjectUseCase struct {
	mock.Mock
}

func (m *mockProjectUseCase) Create(ctx context.Context, input *contentUseCase.ProjectInput) (*contentDomain.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Get(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Update(ctx context.Context, id uuid.UUID, input *contentUseCase.ProjectInput) (*contentDomain.Project, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProjectUseCase) List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contentDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Clear(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockArticleUseCase struct {
	mock.Mock
}

func (m *mockArticleUseCase) Create(ctx context.Context, input *contentUseCase.ArticleInput) (*contentDomain.Article, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentDomain.Article), args.Error(1)
}

func (m *mockArticleUseCase) Get(ctx context.Context, id uuid.UUID) (*contentDomain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentDomain.Article), args.Error(1)
}

func (m *mockArticleUseCase) Update(ctx context.Context, id uuid.UUID, input *contentUseCase.ArticleInput) (*contentDomain.Article, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentDomain.Article), args.Error(1)
}

func (m *mockArticleUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockArticleUseCase) List(ctx context.Context, offset, limit int) ([]*contentDomain.Article, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contentDomain.Article), args.Error(1)
}

func (m *mockArticleUseCase) Clear(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
