package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// InquiryRepository defines persistence operations for contact inquiries.
// List returns inquiries newest first.
type InquiryRepository interface {
	Create(ctx context.Context, in *domain.Inquiry) error
	List(ctx context.Context) ([]*domain.Inquiry, error)
}
