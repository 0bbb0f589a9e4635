package service

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
	apperrors "github.com/narendran4787/BritTechDemo/internal/errors"
)

// refreshValueBytes is the entropy of a refresh credential (512 bits).
const refreshValueBytes = 64

// minSigningKeyBytes is the minimum HMAC key length accepted at construction.
const minSigningKeyBytes = 32

// jwtTokenService implements TokenService using HS256-signed JWTs and
// crypto/rand refresh values.
type jwtTokenService struct {
	signingKey []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
}

// NewTokenService creates a TokenService that signs tokens with the given
// symmetric key. Returns an error if the key is shorter than 32 bytes; a weak
// key is a deployment fault and must fail at startup, not per request.
func NewTokenService(signingKey []byte, issuer, audience string, accessTTL time.Duration) (TokenService, error) {
	if len(signingKey) < minSigningKeyBytes {
		return nil, apperrors.New("token signing key must be at least 32 bytes")
	}

	return &jwtTokenService{
		signingKey: signingKey,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
	}, nil
}

// IssueAccessToken signs a new HS256 access token carrying the identity claims.
func (s *jwtTokenService) IssueAccessToken(
	identity authDomain.Identity,
) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.accessTTL)

	claims := jwt.MapClaims{
		"jti":  uuid.Must(uuid.NewV7()).String(),
		"iss":  s.issuer,
		"aud":  s.audience,
		"sub":  identity.Subject,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"name": identity.DisplayName,
		"caps": identity.Capabilities,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign access token")
	}

	return signed, expiresAt, nil
}

// VerifyAccessToken validates the token signature and registered claims and
// extracts the embedded identity.
func (s *jwtTokenService) VerifyAccessToken(tokenString string) (*authDomain.Identity, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			// Reject any algorithm other than the one we sign with
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, authDomain.ErrInvalidAccessToken
			}
			return s.signingKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, authDomain.ErrInvalidAccessToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authDomain.ErrInvalidAccessToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, authDomain.ErrInvalidAccessToken
	}

	identity := &authDomain.Identity{
		Subject: subject,
	}

	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	}

	// JSON decoding yields []interface{} for the caps claim
	if caps, ok := claims["caps"].([]interface{}); ok {
		for _, raw := range caps {
			if capability, ok := raw.(string); ok {
				identity.Capabilities = append(identity.Capabilities, capability)
			}
		}
	}

	return identity, nil
}

// GenerateRefreshValue creates a 64-byte random value, base64 URL-encoded.
func (s *jwtTokenService) GenerateRefreshValue() (string, error) {
	randomBytes := make([]byte, refreshValueBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate refresh value")
	}

	return base64.URLEncoding.EncodeToString(randomBytes), nil
}

// AccessTokenExpiry decodes the expiry claim without signature verification.
// Only safe for timing decisions; a forged expiry merely changes when a
// refresh is attempted, and the rotation itself still validates everything.
func (s *jwtTokenService) AccessTokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, apperrors.Wrap(err, "failed to decode access token")
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return time.Time{}, apperrors.New("access token has no expiry claim")
	}

	return expiresAt.Time, nil
}
