package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

type stubOfferingRepo struct {
	offerings map[string]*domain.Offering
}

func newStubOfferingRepo() *stubOfferingRepo {
	return &stubOfferingRepo{offerings: make(map[string]*domain.Offering)}
}

func cloneOffering(o *domain.Offering) *domain.Offering {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

func (r *stubOfferingRepo) Create(_ context.Context, o *domain.Offering) error {
	for _, existing := range r.offerings {
		if existing.Slug == o.Slug {
			return domain.ErrSlugTaken
		}
	}
	r.offerings[o.ID] = cloneOffering(o)
	return nil
}

func (r *stubOfferingRepo) FindByID(_ context.Context, id string) (*domain.Offering, error) {
	if o, ok := r.offerings[id]; ok {
		return cloneOffering(o), nil
	}
	return nil, domain.ErrOfferingNotFound
}

func (r *stubOfferingRepo) FindBySlug(_ context.Context, slug string) (*domain.Offering, error) {
	for _, o := range r.offerings {
		if o.Slug == slug {
			return cloneOffering(o), nil
		}
	}
	return nil, domain.ErrOfferingNotFound
}

func (r *stubOfferingRepo) List(_ context.Context, filter ports.OfferingFilter) ([]*domain.Offering, error) {
	var out []*domain.Offering
	for _, o := range r.offerings {
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.Category != "" && o.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && o.Featured != *filter.Featured {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(o.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, cloneOffering(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *stubOfferingRepo) Update(_ context.Context, o *domain.Offering) error {
	if _, ok := r.offerings[o.ID]; !ok {
		return domain.ErrOfferingNotFound
	}
	r.offerings[o.ID] = cloneOffering(o)
	return nil
}

func newTestOfferingService(repo ports.OfferingRepository) *OfferingService {
	return NewOfferingService(repo, zerolog.Nop())
}

func TestOfferingService_Create_DerivesSlug(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	offering, err := svc.Create(context.Background(), ports.CreateOfferingInput{
		Title:    "Executive Career Consultation (Premium)",
		Category: "EXECUTIVE",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if offering.Slug != "executive-career-consultation-premium" {
		t.Fatalf("unexpected slug: %s", offering.Slug)
	}
	if offering.Status != domain.OfferingActive {
		t.Fatalf("expected default ACTIVE status, got %s", offering.Status)
	}
}

func TestOfferingService_Create_SlugConflict(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	if _, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Vastu Review"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Vastu Review"}); !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestOfferingService_List_DefaultsToActive(t *testing.T) {
	repo := newStubOfferingRepo()
	svc := newTestOfferingService(repo)

	active, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Active One"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Hidden One", Status: "INACTIVE"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.List(context.Background(), ports.OfferingFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != active.ID {
		t.Fatalf("public list should contain only the active entry: %+v", list)
	}

	adminList, err := svc.ListAdmin(context.Background(), ports.OfferingFilter{})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(adminList) != 2 {
		t.Fatalf("admin list should contain both entries, got %d", len(adminList))
	}
}

func TestOfferingService_Featured(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	if _, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Plain"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	starred, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Starred", Featured: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != starred.ID {
		t.Fatalf("expected only the featured entry: %+v", list)
	}
}

func TestOfferingService_Update_Partial(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	offering, err := svc.Create(context.Background(), ports.CreateOfferingInput{
		Title:    "Wealth Reading",
		Price:    4999,
		Currency: "INR",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := 5999.0
	updated, err := svc.Update(context.Background(), offering.ID, ports.UpdateOfferingInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 5999 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.Title != "Wealth Reading" || updated.Currency != "INR" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestOfferingService_Update_SlugConflict(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	first, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "First"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Second"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), second.ID, ports.UpdateOfferingInput{Slug: &first.Slug}); !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	// re-submitting an entry's own slug is not a conflict
	if _, err := svc.Update(context.Background(), second.ID, ports.UpdateOfferingInput{Slug: &second.Slug}); err != nil {
		t.Fatalf("self-slug update failed: %v", err)
	}
}

func TestOfferingService_Deactivate(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	offering, err := svc.Create(context.Background(), ports.CreateOfferingInput{Title: "Retired Soon"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Deactivate(context.Background(), offering.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	list, err := svc.List(context.Background(), ports.OfferingFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("deactivated entry still public: %+v", list)
	}

	// still reachable directly and through the admin listing
	got, err := svc.Get(context.Background(), offering.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != domain.OfferingInactive {
		t.Fatalf("expected INACTIVE, got %s", got.Status)
	}

	if err := svc.Deactivate(context.Background(), "missing-id"); !errors.Is(err, domain.ErrOfferingNotFound) {
		t.Fatalf("expected ErrOfferingNotFound, got %v", err)
	}
}

func TestOfferingService_Categories(t *testing.T) {
	svc := newTestOfferingService(newStubOfferingRepo())

	cats := svc.Categories()
	if len(cats) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(cats))
	}

	cats[0] = "mutated"
	if again := svc.Categories(); again[0] == "mutated" {
		t.Fatalf("category list was mutated")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Career Consultation", "career-consultation"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"Vastu & Feng-Shui!", "vastu-feng-shui"},
		{"ALL CAPS 2024", "all-caps-2024"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Fatalf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
