package ports

import (
	"context"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// OfferingFilter carries the query parameters for listing catalog entries.
type OfferingFilter struct {
	Category string // optional: exact category match
	Status   string // optional: filter by status; empty = all
	Featured *bool  // optional: filter by featured flag
	Search   string // optional: case-insensitive match on title/description
}

// OfferingRepository defines persistence operations for the service catalog.
// Create must return domain.ErrSlugTaken when the slug's unique constraint
// rejects the insert. List orders by display_order ascending, then
// created_at descending.
type OfferingRepository interface {
	Create(ctx context.Context, o *domain.Offering) error
	FindByID(ctx context.Context, id string) (*domain.Offering, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Offering, error)
	List(ctx context.Context, filter OfferingFilter) ([]*domain.Offering, error)
	Update(ctx context.Context, o *domain.Offering) error
}
