package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
	"github.com/narendran4787/BritTechDemo/internal/metrics"
)

// mockTokenUseCase is a mock implementation of TokenUseCase for testing.
type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Login(
	ctx context.Context,
	username, password string,
) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *mockTokenUseCase) Rotate(
	ctx context.Context,
	refreshValue string,
) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, refreshValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *mockTokenUseCase) Authenticate(
	ctx context.Context,
	accessToken string,
) (*authDomain.Identity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

// recordingMetrics captures recorded operations for assertions.
type recordingMetrics struct {
	operations []string
	statuses   []string
	durations  int
}

func (r *recordingMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.operations = append(r.operations, operation)
	r.statuses = append(r.statuses, status)
}

func (r *recordingMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	r.durations++
}

var _ metrics.BusinessMetrics = (*recordingMetrics)(nil)

func TestTokenUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	pair := &authDomain.TokenPair{
		AccessToken:     "access",
		RefreshToken:    "refresh",
		AccessExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run("Success_RecordsLoginMetrics", func(t *testing.T) {
		next := &mockTokenUseCase{}
		next.On("Login", ctx, "alice", "password").Return(pair, nil)

		recorder := &recordingMetrics{}
		decorated := NewTokenUseCaseWithMetrics(next, recorder)

		got, err := decorated.Login(ctx, "alice", "password")
		require.NoError(t, err)
		assert.Equal(t, pair, got)

		assert.Equal(t, []string{"token_issue"}, recorder.operations)
		assert.Equal(t, []string{"success"}, recorder.statuses)
		assert.Equal(t, 1, recorder.durations)
		next.AssertExpectations(t)
	})

	t.Run("Error_RecordsRotateFailure", func(t *testing.T) {
		next := &mockTokenUseCase{}
		next.On("Rotate", ctx, "stale-value").Return(nil, authDomain.ErrInvalidRefreshToken)

		recorder := &recordingMetrics{}
		decorated := NewTokenUseCaseWithMetrics(next, recorder)

		_, err := decorated.Rotate(ctx, "stale-value")
		assert.ErrorIs(t, err, authDomain.ErrInvalidRefreshToken)

		assert.Equal(t, []string{"token_rotate"}, recorder.operations)
		assert.Equal(t, []string{"error"}, recorder.statuses)
		next.AssertExpectations(t)
	})

	t.Run("Success_RecordsAuthenticateMetrics", func(t *testing.T) {
		identity := &authDomain.Identity{Subject: "alice"}

		next := &mockTokenUseCase{}
		next.On("Authenticate", ctx, "access").Return(identity, nil)

		recorder := &recordingMetrics{}
		decorated := NewTokenUseCaseWithMetrics(next, recorder)

		got, err := decorated.Authenticate(ctx, "access")
		require.NoError(t, err)
		assert.Equal(t, identity, got)

		assert.Equal(t, []string{"token_authenticate"}, recorder.operations)
		next.AssertExpectations(t)
	})
}
