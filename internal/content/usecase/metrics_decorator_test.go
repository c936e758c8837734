package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestProjectUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Clear_RecordsSuccess", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		mockRepo.On("DeleteAll", ctx).Return(int64(3), nil)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "content", "project_clear", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "content", "project_clear", mock.Anything, "success").Once()

		base := NewProjectUseCase(&fakeTxManager{}, mockRepo)
		decorated := NewProjectUseCaseWithMetrics(base, mockMetrics)

		count, err := decorated.Clear(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get_RecordsError", func(t *testing.T) {
		mockRepo := &mockProjectRepository{}
		mockRepo.On("GetByID", ctx, mock.Anything).Return(nil, contentDomain.ErrProjectNotFound)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "content", "project_get", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "content", "project_get", mock.Anything, "error").Once()

		base := NewProjectUseCase(&fakeTxManager{}, mockRepo)
		decorated := NewProjectUseCaseWithMetrics(base, mockMetrics)

		_, err := decorated.Get(ctx, uuid.Must(uuid.NewV7()))

		require.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestArticleUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Clear_RecordsSuccess", func(t *testing.T) {
		mockRepo := &mockArticleRepository{}
		mockRepo.On("DeleteAll", ctx).Return(int64(2), nil)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "content", "article_clear", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "content", "article_clear", mock.Anything, "success").Once()

		base := NewArticleUseCase(&fakeTxManager{}, mockRepo)
		decorated := NewArticleUseCaseWithMetrics(base, mockMetrics)

		count, err := decorated.Clear(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		mockMetrics.AssertExpectations(t)
	})
}
