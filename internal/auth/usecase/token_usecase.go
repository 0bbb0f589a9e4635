package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
	authService "github.com/narendran4787/BritTechDemo/internal/auth/service"
)

// defaultCapabilities are granted to every authenticated principal. A real
// directory would derive these from group membership.
var defaultCapabilities = []string{"read", "write"}

// tokenUseCase implements TokenUseCase on top of a TokenService and a
// refresh credential repository.
type tokenUseCase struct {
	tokenService authService.TokenService
	refreshRepo  RefreshCredentialRepository
	refreshTTL   time.Duration
}

// NewTokenUseCase creates the token use case. refreshTTL bounds how long an
// unredeemed refresh credential stays consumable.
func NewTokenUseCase(
	tokenService authService.TokenService,
	refreshRepo RefreshCredentialRepository,
	refreshTTL time.Duration,
) TokenUseCase {
	return &tokenUseCase{
		tokenService: tokenService,
		refreshRepo:  refreshRepo,
		refreshTTL:   refreshTTL,
	}
}

// Login authenticates a principal and issues the initial token pair.
//
// Credential verification accepts any non-empty username/password pair. The
// surrounding issuance and rotation machinery is real; only the directory
// lookup is a stand-in for an external identity provider.
func (t *tokenUseCase) Login(
	ctx context.Context,
	username, password string,
) (*authDomain.TokenPair, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, authDomain.ErrInvalidCredentials
	}

	identity := authDomain.Identity{
		Subject:      username,
		DisplayName:  username,
		Capabilities: defaultCapabilities,
	}

	return t.issuePair(ctx, identity)
}

// Rotate redeems a refresh credential for a new token pair.
//
// The consume step is delegated to the repository's atomic Take, so a value
// presented twice concurrently produces exactly one new pair. The losing
// caller, like any caller holding an unknown or expired value, gets
// ErrInvalidRefreshToken with no hint of which case applied.
func (t *tokenUseCase) Rotate(
	ctx context.Context,
	refreshValue string,
) (*authDomain.TokenPair, error) {
	if refreshValue == "" {
		return nil, authDomain.ErrInvalidRefreshToken
	}

	credential, err := t.refreshRepo.Take(ctx, refreshValue)
	if err != nil {
		if errors.Is(err, authDomain.ErrRefreshTokenNotFound) {
			return nil, authDomain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	return t.issuePair(ctx, credential.Identity)
}

// Authenticate fully validates an access token and extracts its identity.
func (t *tokenUseCase) Authenticate(
	ctx context.Context,
	accessToken string,
) (*authDomain.Identity, error) {
	return t.tokenService.VerifyAccessToken(accessToken)
}

// issuePair signs a new access token and stores a fresh refresh credential
// for the identity.
func (t *tokenUseCase) issuePair(
	ctx context.Context,
	identity authDomain.Identity,
) (*authDomain.TokenPair, error) {
	accessToken, expiresAt, err := t.tokenService.IssueAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refreshValue, err := t.tokenService.GenerateRefreshValue()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	credential := &authDomain.RefreshCredential{
		Identity:  identity,
		ExpiresAt: now.Add(t.refreshTTL),
		CreatedAt: now,
	}

	if err := t.refreshRepo.Save(ctx, refreshValue, credential); err != nil {
		return nil, err
	}

	return &authDomain.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshValue,
		AccessExpiresAt: expiresAt,
	}, nil
}
