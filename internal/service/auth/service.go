package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafflow/stafflow-backend-go/internal/domain/auth"
	"github.com/stafflow/stafflow-backend-go/internal/domain/user"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/jwt"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/oauth"
)

type ServiceImpl struct {
	userRepo      user.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.Service {
	return &ServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.Service. Lookup failures and password mismatches
// collapse into the same error so the response does not leak which emails
// have accounts.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// LoginWithGoogle implements auth.Service. A first-time Google login creates
// the user; a returning one links the Google ID if it is not stored yet.
func (s *ServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	googleUser, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !googleUser.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByEmail(ctx, googleUser.Email)
	switch {
	case err == nil:
		if u.GoogleID == nil {
			if err := s.userRepo.LinkGoogleID(ctx, u.ID, googleUser.GoogleID); err != nil {
				return auth.TokenResponse{}, fmt.Errorf("failed to link google id: %w", err)
			}
		}
	case errors.Is(err, user.ErrUserNotFound):
		u, err = s.userRepo.Create(ctx, user.User{
			ID:       uuid.NewString(),
			Email:    googleUser.Email,
			GoogleID: &googleUser.GoogleID,
		})
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	default:
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return s.issueTokens(u)
}

// RefreshToken implements auth.Service. The presented token is revoked and a
// fresh pair is issued, so a replayed refresh token fails.
func (s *ServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	parsed, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if parsed.Expiration().Before(time.Now()) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	tokenType, _ := parsed.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := parsed.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	id, ok := userID.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.Service.
func (s *ServiceImpl) Logout(_ context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *ServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		Email:            u.Email,
		IsAdmin:          u.IsAdmin,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
