package dto

import (
	"time"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
)

// TokenPairResponse is the HTTP representation of an issued token pair.
type TokenPairResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// NewTokenPairResponse converts a domain token pair to its HTTP representation.
func NewTokenPairResponse(pair *authDomain.TokenPair) *TokenPairResponse {
	return &TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    pair.AccessExpiresAt,
	}
}
