package domain

import (
	"github.com/narendran4787/BritTechDemo/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials indicates the login credentials are missing or wrong.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidAccessToken indicates the access token failed signature or claim
	// validation, or is expired.
	ErrInvalidAccessToken = errors.Wrap(errors.ErrUnauthorized, "invalid access token")

	// ErrInvalidRefreshToken indicates the refresh token is unknown, expired, or
	// already consumed. The three cases are indistinguishable to the caller so a
	// stolen value cannot be probed for liveness.
	ErrInvalidRefreshToken = errors.Wrap(errors.ErrUnauthorized, "invalid refresh token")

	// ErrRefreshTokenNotFound indicates the refresh credential is absent from the
	// store. Internal to the auth module; surfaced as ErrInvalidRefreshToken.
	ErrRefreshTokenNotFound = errors.Wrap(errors.ErrNotFound, "refresh token not found")
)
