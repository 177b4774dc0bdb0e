package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

// offeredSlots is the fixed slot catalog. No availability tracking exists:
// every date offers all four windows, and nothing prevents two bookings from
// landing on the same date and slot.
var offeredSlots = []string{
	"10:00 AM – 11:00 AM",
	"11:30 AM – 12:30 PM",
	"2:00 PM – 3:00 PM",
	"4:00 PM – 5:00 PM",
}

var astrologerProfile = domain.Astrologer{
	ID:                 "astrologer-sameer",
	Name:               "Astrologer Sameer",
	Expertise:          []string{"Vedic Astrology", "Career Guidance", "Marriage Compatibility"},
	Experience:         "15+ years",
	ConsultationFee:    1999,
	Currency:           "INR",
	Bio:                "Renowned Vedic astrologer specializing in executive guidance and life-altering decisions. Trusted advisor to business leaders and distinguished families.",
	Rating:             4.9,
	TotalConsultations: 2500,
}

// BookingService validates and records consultation bookings.
type BookingService struct {
	repo  ports.BookingRepository
	queue NotificationQueue
	log   zerolog.Logger
}

// NewBookingService creates a BookingService. queue may be nil, in which
// case confirmations are not dispatched.
func NewBookingService(repo ports.BookingRepository, queue NotificationQueue, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, queue: queue, log: log}
}

func (s *BookingService) Astrologer() domain.Astrologer {
	return astrologerProfile
}

func (s *BookingService) AvailableSlots(date string) []string {
	slots := make([]string, len(offeredSlots))
	copy(slots, offeredSlots)
	return slots
}

// CreateBooking records a consultation request. Bookings are auto-confirmed:
// there is no payment or approval gate.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", input.ScheduledDate); err != nil {
		return nil, domain.ErrInvalidDate
	}
	if !slotOffered(input.TimeSlot) {
		return nil, domain.ErrInvalidSlot
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:               uuid.NewString(),
		BookingReference: bookingReference(now),
		ClientName:       input.ClientName,
		ClientEmail:      input.ClientEmail,
		ClientPhone:      input.ClientPhone,
		ServiceType:      input.ServiceType,
		ScheduledDate:    input.ScheduledDate,
		TimeSlot:         input.TimeSlot,
		Status:           domain.BookingConfirmed,
		CreatedAt:        now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Msg("failed to create booking")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info().
		Str("booking_reference", booking.BookingReference).
		Str("scheduled_date", booking.ScheduledDate).
		Str("time_slot", booking.TimeSlot).
		Msg("booking confirmed")

	if s.queue != nil {
		s.queue.Enqueue(ports.NotificationInput{
			Kind:      ports.NotifyBookingConfirmed,
			Reference: booking.BookingReference,
			Recipient: booking.ClientEmail,
		})
	}

	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.List(ctx)
}

func slotOffered(slot string) bool {
	for _, s := range offeredSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// bookingReference returns a short human-readable code in the format
// PN<6 time digits><4 hex>. The time digits keep the code roughly sortable;
// the random suffix makes same-millisecond collisions vanishingly unlikely.
func bookingReference(now time.Time) string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("PN%06d", now.UnixMilli()%1_000_000)
	}
	return fmt.Sprintf("PN%06d%02X%02X", now.UnixMilli()%1_000_000, b[0], b[1])
}
