// Package memory provides in-process implementations of the persistence
// ports, used by tests and as a no-database fallback.
package memory

import (
	"context"
	"sync"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// BookingRepository stores bookings in an append-ordered slice. Appends from
// concurrent requests are serialized by the mutex; nothing prevents two of
// them from holding the same date and slot.
type BookingRepository struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	clone := *b

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, &clone)
	return nil
}

// List returns all bookings in creation order.
func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		clone := *b
		out[i] = &clone
	}
	return out, nil
}
