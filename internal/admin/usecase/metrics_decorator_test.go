package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
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

type mockGate struct {
	mock.Mock
}

func (m *mockGate) Check(ctx context.Context, rawToken string) bool {
	args := m.Called(ctx, rawToken)
	return args.Bool(0)
}

func TestTokenAuthorityWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Issue_RecordsSuccess", func(t *testing.T) {
		mockAuthority := &mockTokenAuthority{}
		mockAuthority.On("Issue", ctx, 30).Return(testPlainToken, nil)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "admin", "token_issue", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "admin", "token_issue", mock.Anything, "success").Once()

		decorated := NewTokenAuthorityWithMetrics(mockAuthority, mockMetrics)

		plainToken, err := decorated.Issue(ctx, 30)

		require.NoError(t, err)
		assert.Equal(t, testPlainToken, plainToken)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Revoke_RecordsError", func(t *testing.T) {
		mockAuthority := &mockTokenAuthority{}
		mockAuthority.On("Revoke", ctx, testPlainToken).Return(assert.AnError)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "admin", "token_revoke", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "admin", "token_revoke", mock.Anything, "error").Once()

		decorated := NewTokenAuthorityWithMetrics(mockAuthority, mockMetrics)

		err := decorated.Revoke(ctx, testPlainToken)

		require.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestAccessGateWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Check_RecordsSuccess", func(t *testing.T) {
		gate := &mockGate{}
		gate.On("Check", ctx, testPlainToken).Return(true)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "admin", "access_check", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "admin", "access_check", mock.Anything, "success").Once()

		decorated := NewAccessGateWithMetrics(gate, mockMetrics)

		assert.True(t, decorated.Check(ctx, testPlainToken))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Check_RecordsDenied", func(t *testing.T) {
		gate := &mockGate{}
		gate.On("Check", ctx, testPlainToken).Return(false)

		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "admin", "access_check", "denied").Once()
		mockMetrics.On("RecordDuration", ctx, "admin", "access_check", mock.Anything, "denied").Once()

		decorated := NewAccessGateWithMetrics(gate, mockMetrics)

		assert.False(t, decorated.Check(ctx, testPlainToken))
		mockMetrics.AssertExpectations(t)
	})
}
