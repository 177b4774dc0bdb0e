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

// NotificationQueue is the interface the service uses to hand off
// notifications for asynchronous delivery.
type NotificationQueue interface {
	Enqueue(in ports.NotificationInput)
}

// InquiryService records contact-form submissions.
type InquiryService struct {
	repo  ports.InquiryRepository
	queue NotificationQueue
	log   zerolog.Logger
}

// NewInquiryService creates an InquiryService. queue may be nil, in which
// case no notification is dispatched.
func NewInquiryService(repo ports.InquiryRepository, queue NotificationQueue, log zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, queue: queue, log: log}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	inquiry := &domain.Inquiry{
		ID:        uuid.NewString(),
		Reference: inquiryReference(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Status:    domain.InquiryStatusNew,
		Priority:  domain.InquiryPriorityNormal,
		Source:    domain.InquirySourceWebsite,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		s.log.Error().Err(err).Msg("failed to create inquiry")
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.log.Info().
		Str("reference", inquiry.Reference).
		Str("email", inquiry.Email).
		Msg("contact inquiry created")

	if s.queue != nil {
		s.queue.Enqueue(ports.NotificationInput{
			Kind:      ports.NotifyInquiryReceived,
			Reference: inquiry.Reference,
			Recipient: inquiry.Email,
		})
	}

	return inquiry, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]*domain.Inquiry, error) {
	return s.repo.List(ctx)
}

// inquiryReference returns a short code in the format INQ-XXXXXXXX.
func inquiryReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("INQ-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("INQ-%08X", b)
}
