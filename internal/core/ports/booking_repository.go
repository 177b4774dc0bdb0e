package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. The backing
// store is swappable: in-memory for tests, MongoDB in production. List must
// preserve creation order.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]*domain.Booking, error)
}
