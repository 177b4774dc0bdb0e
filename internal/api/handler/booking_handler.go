package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planet-nakshatra/consultation-api/internal/api/metrics"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for consultation bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	ClientName    string `json:"client_name" validate:"required"`
	ClientEmail   string `json:"client_email" validate:"required,email"`
	ClientPhone   string `json:"client_phone,omitempty"`
	ServiceType   string `json:"service_type" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	TimeSlot      string `json:"time_slot" validate:"required"`
}

// Astrologer returns the consulting astrologer's public profile.
//
// @Summary      Astrologer profile
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  domain.Astrologer
// @Router       /bookings/astrologer [get]
func (h *BookingHandler) Astrologer(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Astrologer())
}

// Slots returns the offered time slots for a date.
//
// @Summary      Available time slots
// @Tags         bookings
// @Produce      json
// @Param        date  query     string  false  "Date (YYYY-MM-DD)"
// @Success      200   {array}   string
// @Router       /bookings/slots [get]
func (h *BookingHandler) Slots(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AvailableSlots(c.QueryParam("date")))
}

// Create books a consultation. Bookings are confirmed immediately.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		ServiceType:   req.ServiceType,
		ScheduledDate: req.ScheduledDate,
		TimeSlot:      req.TimeSlot,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.ServiceType).Inc()

	return c.JSON(http.StatusCreated, booking)
}

// List returns all bookings in creation order.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.ListBookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
