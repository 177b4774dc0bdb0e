package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to book a consultation.
type CreateBookingInput struct {
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ServiceType   string
	ScheduledDate string // YYYY-MM-DD
	TimeSlot      string // one of the offered slot labels
}

// BookingService defines use-case operations for consultation bookings.
type BookingService interface {
	Astrologer() domain.Astrologer
	// AvailableSlots returns the offered slot labels for a date. No real
	// availability tracking exists: every date gets the full catalog.
	AvailableSlots(date string) []string
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
}
