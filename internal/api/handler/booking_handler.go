package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propchase/rental-api/internal/api/metrics"
	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// BookingHandler handles booking creation and listing.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// --- Request / Response types ---

// createBookingRequest deliberately has no user id field; the booker is
// always the authenticated subject.
type createBookingRequest struct {
	PropertyID string    `json:"property_id" validate:"required"`
	CheckIn    time.Time `json:"check_in" validate:"required"`
	CheckOut   time.Time `json:"check_out" validate:"required"`
	FullName   string    `json:"full_name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Price      float64   `json:"price" validate:"gt=0"`
}

type bookingResponse struct {
	*domain.Booking
	Property *domain.Property `json:"property,omitempty"`
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking fields"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), subject.ID, ports.CreateBookingInput{
		PropertyID: req.PropertyID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		FullName:   req.FullName,
		Email:      req.Email,
		Price:      req.Price,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// ListMine handles GET /v1/bookings, returning the subject's bookings
// expanded with their properties.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListByUser(c.Request().Context(), subject.ID)
	if err != nil {
		return err
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, bookingResponse{Booking: b.Booking, Property: b.Property})
	}
	return c.JSON(http.StatusOK, resp)
}
