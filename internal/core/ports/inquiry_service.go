package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// CreateInquiryInput carries a contact-form submission plus the request
// metadata captured by the transport layer.
type CreateInquiryInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	IPAddress string
	UserAgent string
}

// InquiryService defines use-case operations for contact inquiries.
type InquiryService interface {
	CreateInquiry(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context) ([]*domain.Inquiry, error)
}
