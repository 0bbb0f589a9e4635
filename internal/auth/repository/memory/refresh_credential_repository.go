// Package memory provides an in-memory refresh credential repository.
//
// Refresh credentials are deliberately kept out of the database: they are
// short-lived, high-churn, and lose nothing of value on restart (clients
// simply log in again). The repository enforces the one-time-use property
// with an atomic take-and-remove under a single mutex.
package memory

import (
	"context"
	"sync"
	"time"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
)

// defaultSweepInterval is how often expired credentials are removed in the
// background. Expiry is also checked on every Take, so the sweeper only
// bounds memory growth from never-redeemed credentials.
const defaultSweepInterval = 5 * time.Minute

// RefreshCredentialRepository stores refresh credentials keyed by their
// opaque value. Safe for concurrent use.
type RefreshCredentialRepository struct {
	mu          sync.Mutex
	credentials map[string]*authDomain.RefreshCredential
	stopSweeper chan struct{}
	closeOnce   sync.Once
}

// NewRefreshCredentialRepository creates the repository and starts a
// background sweeper for expired credentials. Call Close to stop it.
func NewRefreshCredentialRepository() *RefreshCredentialRepository {
	r := &RefreshCredentialRepository{
		credentials: make(map[string]*authDomain.RefreshCredential),
		stopSweeper: make(chan struct{}),
	}

	go r.sweepLoop(defaultSweepInterval)

	return r
}

// Save stores a credential under its opaque value. Saving also sweeps
// expired entries opportunistically, so steady issuance keeps the map
// bounded even between background sweeps.
func (r *RefreshCredentialRepository) Save(
	ctx context.Context,
	value string,
	credential *authDomain.RefreshCredential,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.credentials[value] = credential
	r.sweepLocked(time.Now().UTC())
	return nil
}

// Take atomically removes and returns the credential stored under value.
//
// Exactly one caller can win for a given value: the lookup and the removal
// happen under the same lock, so concurrent redemption attempts with the same
// value resolve to one winner and the rest observe absence. Expired
// credentials are treated as absent and removed on the spot.
func (r *RefreshCredentialRepository) Take(
	ctx context.Context,
	value string,
) (*authDomain.RefreshCredential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	credential, ok := r.credentials[value]
	if !ok {
		return nil, authDomain.ErrRefreshTokenNotFound
	}

	delete(r.credentials, value)

	if credential.IsExpired(time.Now().UTC()) {
		return nil, authDomain.ErrRefreshTokenNotFound
	}

	return credential, nil
}

// Len returns the number of stored credentials. Intended for tests and
// operational introspection.
func (r *RefreshCredentialRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.credentials)
}

// Close stops the background sweeper. Safe to call multiple times.
func (r *RefreshCredentialRepository) Close() {
	r.closeOnce.Do(func() {
		close(r.stopSweeper)
	})
}

// sweepLoop periodically removes expired credentials until Close is called.
func (r *RefreshCredentialRepository) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopSweeper:
			return
		case <-ticker.C:
			r.sweep(time.Now().UTC())
		}
	}
}

// sweep removes every credential expired at the given time.
func (r *RefreshCredentialRepository) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(now)
}

// sweepLocked removes expired credentials. Callers must hold r.mu.
func (r *RefreshCredentialRepository) sweepLocked(now time.Time) {
	for value, credential := range r.credentials {
		if credential.IsExpired(now) {
			delete(r.credentials, value)
		}
	}
}
