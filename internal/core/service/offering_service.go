package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

// offeringCategories is the fixed category taxonomy of the catalog.
var offeringCategories = []string{
	"EXECUTIVE",
	"PERSONAL",
	"LEGACY",
	"WEALTH",
	"CORPORATE",
	"RELATIONSHIPS",
	"VASTU",
	"REMEDIES",
	"CRISIS",
	"RETAINER",
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// OfferingService manages the consultation service catalog.
type OfferingService struct {
	repo ports.OfferingRepository
	log  zerolog.Logger
}

func NewOfferingService(repo ports.OfferingRepository, log zerolog.Logger) *OfferingService {
	return &OfferingService{repo: repo, log: log}
}

// Create adds a catalog entry. When no slug is supplied one is derived from
// the title; a duplicate slug surfaces as domain.ErrSlugTaken.
func (s *OfferingService) Create(ctx context.Context, input ports.CreateOfferingInput) (*domain.Offering, error) {
	slug := input.Slug
	if slug == "" {
		slug = slugify(input.Title)
	}

	if existing, err := s.repo.FindBySlug(ctx, slug); err == nil && existing != nil {
		return nil, domain.ErrSlugTaken
	}

	status := domain.OfferingStatus(input.Status)
	if status == "" {
		status = domain.OfferingActive
	}

	now := time.Now().UTC()
	offering := &domain.Offering{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Slug:             slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Category:         input.Category,
		Status:           status,
		Keywords:         input.Keywords,
		Features:         input.Features,
		Duration:         input.Duration,
		Price:            input.Price,
		Currency:         input.Currency,
		ImageURL:         input.ImageURL,
		IconURL:          input.IconURL,
		DisplayOrder:     input.DisplayOrder,
		Featured:         input.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, offering); err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", offering.Slug).Str("category", offering.Category).Msg("offering created")
	return offering, nil
}

// List returns the public catalog: ACTIVE entries only, unless the filter
// explicitly requests a status.
func (s *OfferingService) List(ctx context.Context, filter ports.OfferingFilter) ([]*domain.Offering, error) {
	if filter.Status == "" {
		filter.Status = string(domain.OfferingActive)
	}
	return s.repo.List(ctx, filter)
}

// ListAdmin returns entries regardless of status.
func (s *OfferingService) ListAdmin(ctx context.Context, filter ports.OfferingFilter) ([]*domain.Offering, error) {
	return s.repo.List(ctx, filter)
}

func (s *OfferingService) Get(ctx context.Context, id string) (*domain.Offering, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OfferingService) GetBySlug(ctx context.Context, slug string) (*domain.Offering, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *OfferingService) Featured(ctx context.Context) ([]*domain.Offering, error) {
	featured := true
	return s.repo.List(ctx, ports.OfferingFilter{
		Status:   string(domain.OfferingActive),
		Featured: &featured,
	})
}

func (s *OfferingService) Categories() []string {
	cats := make([]string, len(offeringCategories))
	copy(cats, offeringCategories)
	return cats
}

// Update applies a partial update. A slug change is checked for conflicts
// against other entries.
func (s *OfferingService) Update(ctx context.Context, id string, input ports.UpdateOfferingInput) (*domain.Offering, error) {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != offering.Slug {
		if existing, err := s.repo.FindBySlug(ctx, *input.Slug); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrSlugTaken
		}
		offering.Slug = *input.Slug
	}

	applyString(&offering.Title, input.Title)
	applyString(&offering.Description, input.Description)
	applyString(&offering.ShortDescription, input.ShortDescription)
	applyString(&offering.Category, input.Category)
	applyString(&offering.Duration, input.Duration)
	applyString(&offering.Currency, input.Currency)
	applyString(&offering.ImageURL, input.ImageURL)
	applyString(&offering.IconURL, input.IconURL)
	if input.Status != nil {
		offering.Status = domain.OfferingStatus(*input.Status)
	}
	if input.Keywords != nil {
		offering.Keywords = input.Keywords
	}
	if input.Features != nil {
		offering.Features = input.Features
	}
	if input.Price != nil {
		offering.Price = *input.Price
	}
	if input.DisplayOrder != nil {
		offering.DisplayOrder = *input.DisplayOrder
	}
	if input.Featured != nil {
		offering.Featured = *input.Featured
	}
	offering.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, offering); err != nil {
		return nil, fmt.Errorf("update offering: %w", err)
	}
	return offering, nil
}

// Deactivate soft-deletes an entry: it disappears from the public catalog
// but stays queryable through the admin listing.
func (s *OfferingService) Deactivate(ctx context.Context, id string) error {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	offering.Status = domain.OfferingInactive
	offering.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, offering); err != nil {
		return fmt.Errorf("deactivate offering: %w", err)
	}

	s.log.Info().Str("slug", offering.Slug).Msg("offering deactivated")
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
