// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
)

// RefreshCredentialRepository defines storage operations for refresh credentials.
// The opaque refresh value is the key; the credential record is the payload.
type RefreshCredentialRepository interface {
	// Save stores a credential under its opaque value.
	Save(ctx context.Context, value string, credential *authDomain.RefreshCredential) error

	// Take atomically removes and returns the credential stored under value.
	// Implementations must guarantee that concurrent calls with the same value
	// yield the credential to exactly one caller; all others receive
	// ErrRefreshTokenNotFound. Expired credentials are treated as absent.
	Take(ctx context.Context, value string) (*authDomain.RefreshCredential, error)
}

// TokenUseCase defines the authentication operations exposed over HTTP.
type TokenUseCase interface {
	// Login authenticates a principal and issues a fresh token pair.
	// Returns ErrInvalidCredentials when the credentials are rejected.
	Login(ctx context.Context, username, password string) (*authDomain.TokenPair, error)

	// Rotate consumes a refresh credential and issues a replacement token pair.
	// The consumed value is invalid afterwards regardless of outcome. Returns
	// ErrInvalidRefreshToken when the value is unknown, expired, or already used.
	Rotate(ctx context.Context, refreshValue string) (*authDomain.TokenPair, error)

	// Authenticate fully validates an access token and returns the identity it
	// was issued to. Returns ErrInvalidAccessToken on any validation failure.
	Authenticate(ctx context.Context, accessToken string) (*authDomain.Identity, error)
}
