package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

// TokenConfig carries the signing secrets and lifetimes for both token
// classes. The two secrets must differ so a leaked access secret cannot mint
// refresh tokens, and vice versa.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// AuthService implements registration, login, token refresh, and password
// change over a UserRepository.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	issuer TokenIssuer
	tokens TokenConfig
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens TokenConfig, log zerolog.Logger) *AuthService {
	if tokens.AccessTTL <= 0 {
		tokens.AccessTTL = 7 * 24 * time.Hour
	}
	if tokens.RefreshTTL <= 0 {
		tokens.RefreshTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		repo:   repo,
		hasher: NewPasswordHasher(),
		issuer: NewTokenIssuer(),
		tokens: tokens,
		log:    log,
	}
}

// Register creates a CLIENT account and issues its first token pair.
// A duplicate email surfaces as domain.ErrEmailTaken; when two concurrent
// registrations race, the store's unique constraint rejects the second insert.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Company:      input.Company,
		Role:         domain.RoleClient,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user registered")

	return &ports.AuthResult{User: user.Sanitized(), Tokens: pair}, nil
}

// Login verifies credentials and issues a token pair. An unknown email and a
// wrong password return the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if user.Status != domain.UserActive {
		return nil, domain.ErrAccountInactive
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	now := time.Now().UTC()
	if err := s.repo.TouchUpdatedAt(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record login time")
	} else {
		user.UpdatedAt = now
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{User: user.Sanitized(), Tokens: pair}, nil
}

// Refresh verifies a refresh token under the refresh secret, re-resolves the
// subject, and rotates both tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.issuer.Verify(refreshToken, s.tokens.RefreshSecret)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if user.Status != domain.UserActive {
		return nil, domain.ErrInvalidToken
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	return &pair, nil
}

// ChangePassword replaces the stored hash after verifying the current
// password. Existing tokens stay valid until natural expiry: there is no
// revocation list.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("change password: %w", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return domain.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash, time.Now().UTC()); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

// ValidateUser resolves an ACTIVE user's sanitized profile for the request
// authorization middleware. Missing or inactive users yield (nil, nil).
func (s *AuthService) ValidateUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("validate user: %w", err)
	}
	if user.Status != domain.UserActive {
		return nil, nil
	}
	return user.Sanitized(), nil
}

func (s *AuthService) issuePair(user *domain.User) (ports.TokenPair, error) {
	claims := TokenClaims{UserID: user.ID, Email: user.Email, Role: user.Role}

	access, err := s.issuer.Issue(claims, s.tokens.AccessSecret, s.tokens.AccessTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := s.issuer.Issue(claims, s.tokens.RefreshSecret, s.tokens.RefreshTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
