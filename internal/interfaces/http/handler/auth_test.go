package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	identityapp "github.com/chemstock/backend/internal/application/identity"
	"github.com/chemstock/backend/internal/domain/identity"
	"github.com/chemstock/backend/internal/infrastructure/auth"
	"github.com/chemstock/backend/internal/infrastructure/config"
	"github.com/chemstock/backend/internal/interfaces/http/dto"
)

// MockUserRepository implements identity.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthTestRouter(userRepo *MockUserRepository) *gin.Engine {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "chemstock-test",
	})
	svc := identityapp.NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
	h := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.Refresh)
	router.POST("/auth/logout", h.Logout)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token pair for valid credentials", func(t *testing.T) {
		user, err := identity.NewUser("ana@chemstock.example", "correct-horse-battery")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ana@chemstock.example").Return(user, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		router := newAuthTestRouter(repo)

		rec := postJSON(router, "/auth/login", map[string]string{
			"email":    "ana@chemstock.example",
			"password": "correct-horse-battery",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["access_token"])
		assert.NotEmpty(t, data["refresh_token"])
		assert.Equal(t, "Bearer", data["token_type"])

		userInfo := data["user"].(map[string]interface{})
		assert.Equal(t, "ana@chemstock.example", userInfo["email"])
	})

	t.Run("wrong password maps to 401", func(t *testing.T) {
		user, err := identity.NewUser("ana@chemstock.example", "correct-horse-battery")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ana@chemstock.example").Return(user, nil)

		router := newAuthTestRouter(repo)

		rec := postJSON(router, "/auth/login", map[string]string{
			"email":    "ana@chemstock.example",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		router := newAuthTestRouter(new(MockUserRepository))

		rec := postJSON(router, "/auth/login", map[string]string{
			"email":    "not-an-email",
			"password": "whatever",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		router := newAuthTestRouter(new(MockUserRepository))

		rec := postJSON(router, "/auth/login", map[string]string{
			"email": "ana@chemstock.example",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("invalid refresh token maps to 401", func(t *testing.T) {
		router := newAuthTestRouter(new(MockUserRepository))

		rec := postJSON(router, "/auth/refresh", map[string]string{
			"refresh_token": "garbage",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing refresh token is a bad request", func(t *testing.T) {
		router := newAuthTestRouter(new(MockUserRepository))

		rec := postJSON(router, "/auth/refresh", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("logout without tokens succeeds", func(t *testing.T) {
		router := newAuthTestRouter(new(MockUserRepository))

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
