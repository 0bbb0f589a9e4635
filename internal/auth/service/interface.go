// Package service provides technical services for authentication operations.
//
// This package implements token signing, verification, and refresh credential
// generation using industry-standard cryptographic practices.
package service

import (
	"time"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
)

// TokenService defines operations for access token signing and refresh
// credential generation. Implementations must use cryptographically secure
// random generation for refresh values and a vetted JWT library for signing.
type TokenService interface {
	// IssueAccessToken signs a new access token for the identity.
	// Returns the compact token string and its expiry time.
	IssueAccessToken(identity authDomain.Identity) (token string, expiresAt time.Time, err error)

	// VerifyAccessToken fully validates a token (signature, issuer, audience,
	// expiry) and returns the identity embedded in its claims.
	// Returns ErrInvalidAccessToken for any validation failure.
	VerifyAccessToken(token string) (*authDomain.Identity, error)

	// GenerateRefreshValue creates a new cryptographically secure opaque
	// refresh value. The value carries no meaning; it is only a lookup key.
	GenerateRefreshValue() (string, error)

	// AccessTokenExpiry extracts the expiry claim WITHOUT verifying the
	// signature. The result is advisory and must only be used for timing
	// decisions (e.g., whether a proactive refresh is worthwhile), never for
	// authorization.
	AccessTokenExpiry(token string) (time.Time, error)
}
