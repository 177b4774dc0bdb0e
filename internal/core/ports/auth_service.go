package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Company   string
}

// TokenPair is an access token and a refresh token issued together.
// Ephemeral: never persisted.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}

// AuthService defines the account and token lifecycle use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Refresh rotates both tokens. Any verification failure, an unknown
	// subject, or a non-ACTIVE account surfaces as domain.ErrInvalidToken.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	// ValidateUser resolves the sanitized profile of an ACTIVE user.
	// A missing or inactive user yields (nil, nil): absence is a normal
	// outcome here, not a failure.
	ValidateUser(ctx context.Context, userID string) (*domain.User, error)
}
