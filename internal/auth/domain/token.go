package domain

import "time"

// TokenPair is the result of a login or a refresh rotation: a signed access
// token plus the one-time-use refresh credential that can replace it.
type TokenPair struct {
	// AccessToken is the signed JWT presented on each request.
	AccessToken string
	// RefreshToken is a high-entropy opaque value, valid for exactly one rotation.
	RefreshToken string
	// AccessExpiresAt is when the access token stops being accepted.
	AccessExpiresAt time.Time
}

// RefreshCredential is the server-side record behind an issued refresh token.
// The opaque refresh value itself is the lookup key and is never stored here.
type RefreshCredential struct {
	// Identity is the principal the credential was issued to. Rotation reissues
	// tokens for this identity without re-checking the original login.
	Identity Identity
	// ExpiresAt is when the credential stops being consumable.
	ExpiresAt time.Time
	// CreatedAt is when the credential was issued.
	CreatedAt time.Time
}

// IsExpired reports whether the credential is past its expiry at the given time.
func (r *RefreshCredential) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
