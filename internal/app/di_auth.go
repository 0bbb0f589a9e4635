package app

import (
	"fmt"

	authHTTP "github.com/narendran4787/BritTechDemo/internal/auth/http"
	authMemory "github.com/narendran4787/BritTechDemo/internal/auth/repository/memory"
	authService "github.com/narendran4787/BritTechDemo/internal/auth/service"
	authUseCase "github.com/narendran4787/BritTechDemo/internal/auth/usecase"
)

// TokenService returns the token service instance.
// The signing key is validated at construction; a weak key fails here,
// before the server ever accepts a request.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		if err := c.config.ValidateAuth(); err != nil {
			c.initErrors["tokenService"] = err
			return
		}

		tokenService, err := authService.NewTokenService(
			[]byte(c.config.JWTSigningKey),
			c.config.JWTIssuer,
			c.config.JWTAudience,
			c.config.AccessTokenTTL,
		)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.tokenService = tokenService
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// RefreshCredentialRepository returns the in-memory refresh credential store.
// Its background sweeper is stopped by Container.Shutdown.
func (c *Container) RefreshCredentialRepository() *authMemory.RefreshCredentialRepository {
	c.refreshRepoInit.Do(func() {
		c.refreshRepo = authMemory.NewRefreshCredentialRepository()
	})
	return c.refreshRepo
}

// TokenUseCase returns the token use case instance, decorated with metrics
// recording when metrics are enabled.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get token service for token use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get business metrics for token use case: %w", err)
			return
		}

		useCase := authUseCase.NewTokenUseCase(
			tokenService,
			c.RefreshCredentialRepository(),
			c.config.RefreshTokenTTL,
		)
		c.tokenUseCase = authUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the token HTTP handler instance.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	c.tokenHandlerInit.Do(func() {
		tokenUseCase, err := c.TokenUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = fmt.Errorf("failed to get token use case for token handler: %w", err)
			return
		}
		c.tokenHandler = authHTTP.NewTokenHandler(tokenUseCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}
