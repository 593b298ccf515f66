package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/api/metrics"
	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking lifecycle.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// --- Request / Response types ---

type createBookingRequest struct {
	ScheduledDate       time.Time `json:"scheduled_date"`
	AnimalType          string    `json:"animal_type"`
	Tier                string    `json:"tier"`
	PetName             string    `json:"pet_name"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	SpecialInstructions string    `json:"special_instructions"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type bookingListResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		ClientID:            id.UserID,
		ScheduledDate:       req.ScheduledDate,
		AnimalType:          req.AnimalType,
		Tier:                req.Tier,
		PetName:             req.PetName,
		Address:             req.Address,
		City:                req.City,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.Tier).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /v1/bookings, returning the caller's own bookings.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookingListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListForClient(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{Bookings: bookings})
}

// ListAll handles GET /v1/admin/bookings.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookingListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{Bookings: bookings})
}

// UpdateStatus handles PATCH /v1/admin/bookings/:id/status.
//
// @Summary      Apply a booking lifecycle transition
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(booking.Status)).Inc()
	return c.JSON(http.StatusOK, booking)
}
