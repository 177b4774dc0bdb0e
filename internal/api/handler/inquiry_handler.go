package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planet-nakshatra/consultation-api/internal/api/metrics"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

// InquiryHandler handles HTTP requests for contact inquiries.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type createInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" validate:"required"`
}

// Create records a contact-form submission. Client IP and User-Agent are
// captured here, at the only layer that sees the request.
//
// @Summary      Submit a contact inquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createInquiryRequest  true  "Inquiry details"
// @Success      201   {object}  domain.Inquiry
// @Failure      400   {object}  errorResponse
// @Router       /contact/inquiry [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.service.CreateInquiry(c.Request().Context(), ports.CreateInquiryInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return err
	}

	metrics.InquiriesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, inquiry)
}

// List returns all inquiries, newest first.
//
// @Summary      List contact inquiries
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Inquiry
// @Failure      403  {object}  errorResponse
// @Router       /contact/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.service.ListInquiries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}
