package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planet-nakshatra/consultation-api/internal/core/service"
)

// TestimonialHandler serves the curated testimonial list.
type TestimonialHandler struct {
	service *service.TestimonialService
}

func NewTestimonialHandler(s *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: s}
}

// List returns all testimonials.
//
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.All())
}
