package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

type notifierService struct {
	log zerolog.Logger
}

// NewNotifierService returns a NotifierService that records deliveries in the
// log. No mail provider is wired yet; this is the seam where one would go.
func NewNotifierService(log zerolog.Logger) ports.NotifierService {
	return &notifierService{log: log}
}

func (s *notifierService) Process(ctx context.Context, in ports.NotificationInput) error {
	s.log.Info().
		Str("kind", in.Kind).
		Str("reference", in.Reference).
		Str("recipient", in.Recipient).
		Msg("notification delivered")
	return nil
}
