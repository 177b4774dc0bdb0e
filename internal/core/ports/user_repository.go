package ports

import (
	"context"
	"time"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The store's unique constraint on email is the only guard against duplicate
// registration: Create must return domain.ErrEmailTaken when the insert loses
// that race.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, at time.Time) error
	// TouchUpdatedAt bumps updated_at, recording the last successful login.
	TouchUpdatedAt(ctx context.Context, id string, at time.Time) error
}
