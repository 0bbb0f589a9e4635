package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendran4787/BritTechDemo/internal/auth/http/dto"
	memoryRepository "github.com/narendran4787/BritTechDemo/internal/auth/repository/memory"
	authService "github.com/narendran4787/BritTechDemo/internal/auth/service"
	authUseCase "github.com/narendran4787/BritTechDemo/internal/auth/usecase"
)

// authStack bundles the real auth components wired for HTTP tests.
type authStack struct {
	tokenService authService.TokenService
	tokenUseCase authUseCase.TokenUseCase
	handler      *TokenHandler
	logger       *slog.Logger
}

// setupAuthStack wires the token service, in-memory repository, use case, and
// handler with test settings. accessTTL controls how close issued tokens are
// to expiry, which the refresh middleware tests exploit.
func setupAuthStack(t *testing.T, accessTTL time.Duration) *authStack {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tokenService, err := authService.NewTokenService(
		[]byte("0123456789abcdef0123456789abcdef"),
		"test-issuer",
		"test-audience",
		accessTTL,
	)
	require.NoError(t, err)

	repo := memoryRepository.NewRefreshCredentialRepository()
	t.Cleanup(repo.Close)

	useCase := authUseCase.NewTokenUseCase(tokenService, repo, 24*time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &authStack{
		tokenService: tokenService,
		tokenUseCase: useCase,
		handler:      NewTokenHandler(useCase, logger),
		logger:       logger,
	}
}

// newAuthRouter builds a router exposing the token endpoints.
func newAuthRouter(stack *authStack) *gin.Engine {
	router := gin.New()
	router.POST("/auth/token", stack.handler.LoginHandler)
	router.POST("/auth/refresh", stack.handler.RefreshHandler)
	return router
}

// postJSON performs a JSON POST against the router.
func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

// decodeTokenPair decodes a token pair response body.
func decodeTokenPair(t *testing.T, w *httptest.ResponseRecorder) dto.TokenPairResponse {
	t.Helper()

	var response dto.TokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestTokenHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := postJSON(t, router, "/auth/token", dto.LoginRequest{
			Username: "alice",
			Password: "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		response := decodeTokenPair(t, w)
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.True(t, response.ExpiresAt.After(time.Now()))
	})

	t.Run("Unauthorized_EmptyUsername", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := postJSON(t, router, "/auth/token", dto.LoginRequest{
			Username: "",
			Password: "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unauthorized_EmptyPassword", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := postJSON(t, router, "/auth/token", dto.LoginRequest{
			Username: "alice",
			Password: "",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("BadRequest_MalformedJSON", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTokenHandler_RefreshHandler(t *testing.T) {
	t.Run("Success_RotateIssuedToken", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		login := decodeTokenPair(t, postJSON(t, router, "/auth/token", dto.LoginRequest{
			Username: "alice",
			Password: "password123",
		}))

		w := postJSON(t, router, "/auth/refresh", dto.RefreshRequest{
			RefreshToken: login.RefreshToken,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		rotated := decodeTokenPair(t, w)
		assert.NotEmpty(t, rotated.AccessToken)
		assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)
	})

	t.Run("Unauthorized_ReplayedRefreshToken", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		login := decodeTokenPair(t, postJSON(t, router, "/auth/token", dto.LoginRequest{
			Username: "alice",
			Password: "password123",
		}))

		first := postJSON(t, router, "/auth/refresh", dto.RefreshRequest{
			RefreshToken: login.RefreshToken,
		})
		require.Equal(t, http.StatusOK, first.Code)

		replay := postJSON(t, router, "/auth/refresh", dto.RefreshRequest{
			RefreshToken: login.RefreshToken,
		})
		assert.Equal(t, http.StatusUnauthorized, replay.Code)
	})

	t.Run("Unauthorized_UnknownRefreshToken", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := postJSON(t, router, "/auth/refresh", dto.RefreshRequest{
			RefreshToken: "never-issued-value",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("BadRequest_MissingRefreshToken", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := postJSON(t, router, "/auth/refresh", dto.RefreshRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BadRequest_MalformedJSON", func(t *testing.T) {
		stack := setupAuthStack(t, time.Hour)
		router := newAuthRouter(stack)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
