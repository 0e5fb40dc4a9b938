package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/chemstock/backend/internal/domain/identity"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/infrastructure/auth"
)

// AuthService handles login, token refresh and logout
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login verifies credentials and issues a token pair. Invalid email and
// invalid password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Info("login failed: unknown email", zap.String("email", req.Email))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	if !user.Active {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Info("login failed: wrong password", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds if the timestamp update fails
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return s.tokenResponse(pair, user), nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account no longer exists")
	}
	if !user.Active {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}

	// The old refresh token is single use
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Warn("failed to blacklist used refresh token", zap.Error(err))
	}

	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return s.tokenResponse(pair, user), nil
}

// Logout revokes both tokens of the current session
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if claims, err := s.jwtService.ValidateAccessToken(accessToken); err == nil {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if claims, err := s.jwtService.ValidateRefreshToken(refreshToken); err == nil {
			if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *AuthService) tokenResponse(pair *auth.TokenPair, user *identity.User) *TokenResponse {
	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User: UserInfo{
			ID:    user.ID.String(),
			Email: user.Email,
		},
	}
}
