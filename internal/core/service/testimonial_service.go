package service

import "github.com/planet-nakshatra/consultation-api/internal/core/domain"

// testimonials is the curated list shown on the site. Editorial content,
// not user-submitted.
var testimonials = []domain.Testimonial{
	{
		ID:      "testimonial-1",
		Quote:   "The strategic counsel provided has been instrumental in navigating complex business transitions. An invaluable advisor.",
		Author:  "Chairman",
		Company: "Fortune 500 Conglomerate",
	},
	{
		ID:      "testimonial-2",
		Quote:   "For matters of consequence—from investments to alliances—the guidance has proven remarkably prescient.",
		Author:  "Managing Director",
		Company: "Private Equity Firm",
	},
	{
		ID:      "testimonial-3",
		Quote:   "Our family has relied on this wisdom for succession planning. The discretion and insight are unparalleled.",
		Author:  "Patriarch",
		Company: "Industrial Dynasty",
	},
}

// TestimonialService serves the curated testimonial list.
type TestimonialService struct{}

func NewTestimonialService() *TestimonialService {
	return &TestimonialService{}
}

func (s *TestimonialService) All() []domain.Testimonial {
	out := make([]domain.Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}
