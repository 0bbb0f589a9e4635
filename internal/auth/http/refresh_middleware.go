package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authService "github.com/narendran4787/BritTechDemo/internal/auth/service"
	authUseCase "github.com/narendran4787/BritTechDemo/internal/auth/usecase"
)

// Headers used by the transparent refresh protocol.
const (
	// RefreshTokenHeader carries the client's refresh token into a request.
	RefreshTokenHeader = "X-Refresh-Token"

	// NewAccessTokenHeader carries a newly issued access token back to the client.
	NewAccessTokenHeader = "X-New-Access-Token"

	// NewRefreshTokenHeader carries a newly issued refresh token back to the client.
	NewRefreshTokenHeader = "X-New-Refresh-Token"

	// TokenRefreshedHeader is set to "true" when a rotation happened mid-request.
	TokenRefreshedHeader = "X-Token-Refreshed"
)

// TokenRefreshMiddleware rotates token pairs transparently in the middle of
// authenticated requests, so clients keep a valid session without a dedicated
// refresh round trip.
//
// For each request the middleware:
//  1. Reads the Bearer token from Authorization. No token, no action.
//  2. Decodes the token's expiry WITHOUT verifying the signature. The decode
//     only schedules a refresh; it grants nothing. Authorization still happens
//     downstream in AuthenticationMiddleware with full validation. An
//     undecodable token is treated as expiring.
//  3. If the token has more than leeway left to live, passes through untouched.
//  4. Otherwise reads X-Refresh-Token. Absent, passes through; the request
//     stands or falls on its current access token.
//  5. Attempts a rotation. On failure the request continues with its original
//     credentials: a refresh is an optimization, never a gatekeeper.
//  6. On success, exposes the new pair in X-New-Access-Token and
//     X-New-Refresh-Token, sets X-Token-Refreshed: true, and rewrites the
//     request's Authorization header so the in-flight request is authenticated
//     with the fresh token even if the old one just expired.
//
// Ordering: this middleware must run BEFORE AuthenticationMiddleware on any
// route that wants mid-request refresh, since it rewrites the header the
// authenticator reads.
func TokenRefreshMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	tokenService authService.TokenService,
	leeway time.Duration,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := bearerToken(c.GetHeader("Authorization"))
		if accessToken == "" {
			c.Next()
			return
		}

		// Advisory decode: used only to decide whether a refresh is worthwhile.
		// An undecodable token is treated as expiring, so the rotation is
		// still attempted when a refresh token accompanies the request.
		expiresAt, err := tokenService.AccessTokenExpiry(accessToken)
		if err == nil && time.Until(expiresAt) > leeway {
			c.Next()
			return
		}

		refreshValue := c.GetHeader(RefreshTokenHeader)
		if refreshValue == "" {
			c.Next()
			return
		}

		pair, err := tokenUseCase.Rotate(c.Request.Context(), refreshValue)
		if err != nil {
			// The request proceeds with its original credentials; the
			// authenticator downstream makes the final call
			logger.Debug("mid-request token refresh failed",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header(NewAccessTokenHeader, pair.AccessToken)
		c.Header(NewRefreshTokenHeader, pair.RefreshToken)
		c.Header(TokenRefreshedHeader, "true")

		// Authenticate the rest of this request with the fresh token
		c.Request.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		logger.Debug("token pair refreshed mid-request")

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// Returns "" when the header is absent or not a Bearer scheme.
func bearerToken(header string) string {
	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) ||
		!strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return header[len(bearerPrefix):]
}
