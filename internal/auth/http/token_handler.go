package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/narendran4787/BritTechDemo/internal/auth/domain"
	"github.com/narendran4787/BritTechDemo/internal/auth/http/dto"
	authUseCase "github.com/narendran4787/BritTechDemo/internal/auth/usecase"
	"github.com/narendran4787/BritTechDemo/internal/httputil"
)

// TokenHandler handles HTTP requests for token issuance and rotation.
// It coordinates with the TokenUseCase.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// LoginHandler authenticates a principal and issues a token pair.
// POST /auth/token - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the pair, 401 when credentials are missing or rejected.
func (h *TokenHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Missing credentials are an authentication failure, not a validation one:
	// the response must not reveal whether the account exists
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, authDomain.ErrInvalidCredentials, h.logger)
		return
	}

	pair, err := h.tokenUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenPairResponse(pair))
}

// RefreshHandler redeems a refresh token for a new token pair.
// POST /auth/refresh - No authentication required; the refresh token is the credential.
// Returns 200 OK with the new pair, 400 when the token is missing from the
// request, 401 when it is unknown, expired, or already consumed.
func (h *TokenHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// A structurally absent token is a malformed request, distinct from a
	// present-but-invalid one
	if err := req.Validate(); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	pair, err := h.tokenUseCase.Rotate(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenPairResponse(pair))
}
