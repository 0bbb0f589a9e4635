package usecase

import (
	"context"
	"time"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
	"github.com/narendran4787/BritTechDemo/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (t *tokenUseCaseWithMetrics) Login(
	ctx context.Context,
	username, password string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := t.next.Login(ctx, username, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "token_issue", status)
	t.metrics.RecordDuration(ctx, "auth", "token_issue", time.Since(start), status)

	return pair, err
}

// Rotate records metrics for refresh rotation operations.
func (t *tokenUseCaseWithMetrics) Rotate(
	ctx context.Context,
	refreshValue string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := t.next.Rotate(ctx, refreshValue)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "token_rotate", status)
	t.metrics.RecordDuration(ctx, "auth", "token_rotate", time.Since(start), status)

	return pair, err
}

// Authenticate records metrics for access token validation.
func (t *tokenUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	accessToken string,
) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := t.next.Authenticate(ctx, accessToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "token_authenticate", status)
	t.metrics.RecordDuration(ctx, "auth", "token_authenticate", time.Since(start), status)

	return identity, err
}
