package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// CreateOfferingInput carries the fields accepted when creating a catalog
// entry. Slug is optional; when empty it is derived from Title.
type CreateOfferingInput struct {
	Title            string
	Slug             string
	Description      string
	ShortDescription string
	Category         string
	Status           string
	Keywords         []string
	Features         []string
	Duration         string
	Price            float64
	Currency         string
	ImageURL         string
	IconURL          string
	DisplayOrder     int
	Featured         bool
}

// UpdateOfferingInput carries a partial update. Nil pointers leave the
// current value untouched.
type UpdateOfferingInput struct {
	Title            *string
	Slug             *string
	Description      *string
	ShortDescription *string
	Category         *string
	Status           *string
	Keywords         []string
	Features         []string
	Duration         *string
	Price            *float64
	Currency         *string
	ImageURL         *string
	IconURL          *string
	DisplayOrder     *int
	Featured         *bool
}

// OfferingService defines use-case operations for the consultation catalog.
type OfferingService interface {
	Create(ctx context.Context, input CreateOfferingInput) (*domain.Offering, error)
	// List returns ACTIVE entries matching the filter (public view).
	List(ctx context.Context, filter OfferingFilter) ([]*domain.Offering, error)
	// ListAdmin returns entries in any status (admin view).
	ListAdmin(ctx context.Context, filter OfferingFilter) ([]*domain.Offering, error)
	Get(ctx context.Context, id string) (*domain.Offering, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Offering, error)
	Featured(ctx context.Context) ([]*domain.Offering, error)
	Categories() []string
	Update(ctx context.Context, id string, input UpdateOfferingInput) (*domain.Offering, error)
	// Deactivate soft-deletes an entry by setting its status to INACTIVE.
	Deactivate(ctx context.Context, id string) error
}
