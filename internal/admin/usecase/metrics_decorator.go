package usecase

import (
	"context"
	"time"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	"github.com/trivalleytech/site-api/internal/metrics"
)

// tokenAuthorityWithMetrics decorates TokenAuthority with metrics instrumentation.
type tokenAuthorityWithMetrics struct {
	next    TokenAuthority
	metrics metrics.BusinessMetrics
}

// NewTokenAuthorityWithMetrics wraps a TokenAuthority with metrics recording.
func NewTokenAuthorityWithMetrics(authority TokenAuthority, m metrics.BusinessMetrics) TokenAuthority {
	return &tokenAuthorityWithMetrics{
		next:    authority,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (t *tokenAuthorityWithMetrics) Issue(ctx context.Context, expiresInDays int) (string, error) {
	start := time.Now()
	plainToken, err := t.next.Issue(ctx, expiresInDays)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "admin", "token_issue", status)
	t.metrics.RecordDuration(ctx, "admin", "token_issue", time.Since(start), status)

	return plainToken, err
}

// Revoke records metrics for token revocation operations.
func (t *tokenAuthorityWithMetrics) Revoke(ctx context.Context, plainToken string) error {
	start := time.Now()
	err := t.next.Revoke(ctx, plainToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "admin", "token_revoke", status)
	t.metrics.RecordDuration(ctx, "admin", "token_revoke", time.Since(start), status)

	return err
}

// List records metrics for token listing operations.
func (t *tokenAuthorityWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*adminDomain.AccessToken, error) {
	start := time.Now()
	tokens, err := t.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "admin", "token_list", status)
	t.metrics.RecordDuration(ctx, "admin", "token_list", time.Since(start), status)

	return tokens, err
}

// accessGateWithMetrics decorates AccessGate with metrics instrumentation.
type accessGateWithMetrics struct {
	next    AccessGate
	metrics metrics.BusinessMetrics
}

// NewAccessGateWithMetrics wraps an AccessGate with metrics recording.
// Denials are recorded with a "denied" status so operators can distinguish
// rejected probes from healthy traffic.
func NewAccessGateWithMetrics(gate AccessGate, m metrics.BusinessMetrics) AccessGate {
	return &accessGateWithMetrics{
		next:    gate,
		metrics: m,
	}
}

// Check records metrics for access-check operations.
func (a *accessGateWithMetrics) Check(ctx context.Context, rawToken string) bool {
	start := time.Now()
	authorized := a.next.Check(ctx, rawToken)

	status := "denied"
	if authorized {
		status = "success"
	}

	a.metrics.RecordOperation(ctx, "admin", "access_check", status)
	a.metrics.RecordDuration(ctx, "admin", "access_check", time.Since(start), status)

	return authorized
}
