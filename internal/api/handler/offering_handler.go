package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

// OfferingHandler handles HTTP requests for the consultation catalog.
type OfferingHandler struct {
	service ports.OfferingService
}

func NewOfferingHandler(service ports.OfferingService) *OfferingHandler {
	return &OfferingHandler{service: service}
}

type createOfferingRequest struct {
	Title            string   `json:"title" validate:"required"`
	Slug             string   `json:"slug,omitempty"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"short_description,omitempty"`
	Category         string   `json:"category" validate:"required"`
	Status           string   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Keywords         []string `json:"keywords,omitempty"`
	Features         []string `json:"features,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Price            float64  `json:"price,omitempty"`
	Currency         string   `json:"currency,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
	IconURL          string   `json:"icon_url,omitempty"`
	DisplayOrder     int      `json:"display_order,omitempty"`
	Featured         bool     `json:"featured,omitempty"`
}

type updateOfferingRequest struct {
	Title            *string  `json:"title,omitempty"`
	Slug             *string  `json:"slug,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ShortDescription *string  `json:"short_description,omitempty"`
	Category         *string  `json:"category,omitempty"`
	Status           *string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Keywords         []string `json:"keywords,omitempty"`
	Features         []string `json:"features,omitempty"`
	Duration         *string  `json:"duration,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	Currency         *string  `json:"currency,omitempty"`
	ImageURL         *string  `json:"image_url,omitempty"`
	IconURL          *string  `json:"icon_url,omitempty"`
	DisplayOrder     *int     `json:"display_order,omitempty"`
	Featured         *bool    `json:"featured,omitempty"`
}

func listFilter(c echo.Context) ports.OfferingFilter {
	filter := ports.OfferingFilter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("search"),
	}
	switch c.QueryParam("featured") {
	case "true":
		t := true
		filter.Featured = &t
	case "false":
		f := false
		filter.Featured = &f
	}
	return filter
}

// List returns the public (ACTIVE) catalog.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        featured  query  bool    false  "Filter by featured flag"
// @Param        search    query  string  false  "Search in title and description"
// @Success      200  {array}  domain.Offering
// @Router       /services [get]
func (h *OfferingHandler) List(c echo.Context) error {
	offerings, err := h.service.List(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerings)
}

// ListAdmin returns the catalog in any status.
//
// @Summary      List services (admin)
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Offering
// @Failure      403  {object}  errorResponse
// @Router       /services/admin [get]
func (h *OfferingHandler) ListAdmin(c echo.Context) error {
	offerings, err := h.service.ListAdmin(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerings)
}

// Categories returns the fixed category taxonomy.
//
// @Summary      Service categories
// @Tags         services
// @Produce      json
// @Success      200  {array}  string
// @Router       /services/categories [get]
func (h *OfferingHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Categories())
}

// Featured returns featured ACTIVE catalog entries.
//
// @Summary      Featured services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Offering
// @Router       /services/featured [get]
func (h *OfferingHandler) Featured(c echo.Context) error {
	offerings, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerings)
}

// Get returns one catalog entry by id.
//
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Offering
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *OfferingHandler) Get(c echo.Context) error {
	offering, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offering)
}

// GetBySlug returns one catalog entry by slug.
//
// @Summary      Get a service by slug
// @Tags         services
// @Produce      json
// @Param        slug  path      string  true  "Service slug"
// @Success      200   {object}  domain.Offering
// @Failure      404   {object}  errorResponse
// @Router       /services/slug/{slug} [get]
func (h *OfferingHandler) GetBySlug(c echo.Context) error {
	offering, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offering)
}

// Create adds a catalog entry.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOfferingRequest  true  "Service details"
// @Success      201   {object}  domain.Offering
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /services [post]
func (h *OfferingHandler) Create(c echo.Context) error {
	var req createOfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offering, err := h.service.Create(c.Request().Context(), ports.CreateOfferingInput{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Status:           req.Status,
		Keywords:         req.Keywords,
		Features:         req.Features,
		Duration:         req.Duration,
		Price:            req.Price,
		Currency:         req.Currency,
		ImageURL:         req.ImageURL,
		IconURL:          req.IconURL,
		DisplayOrder:     req.DisplayOrder,
		Featured:         req.Featured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, offering)
}

// Update applies a partial update to a catalog entry.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Service id"
// @Param        body  body      updateOfferingRequest  true  "Fields to update"
// @Success      200   {object}  domain.Offering
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *OfferingHandler) Update(c echo.Context) error {
	var req updateOfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offering, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateOfferingInput{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Status:           req.Status,
		Keywords:         req.Keywords,
		Features:         req.Features,
		Duration:         req.Duration,
		Price:            req.Price,
		Currency:         req.Currency,
		ImageURL:         req.ImageURL,
		IconURL:          req.IconURL,
		DisplayOrder:     req.DisplayOrder,
		Featured:         req.Featured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offering)
}

// Delete soft-deletes a catalog entry.
//
// @Summary      Deactivate a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *OfferingHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
