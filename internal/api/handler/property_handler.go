package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propchase/rental-api/internal/api/metrics"
	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// PropertyHandler handles property listing CRUD.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// --- Request / Response types ---

type propertyRequest struct {
	Title       string   `json:"title" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Description string   `json:"description"`
	ExtraInfo   string   `json:"extra_info"`
	Perks       []string `json:"perks"`
	Photos      []string `json:"photos"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	MaxGuests   int      `json:"max_guests" validate:"gt=0"`
	Price       float64  `json:"price" validate:"gt=0"`
}

func (req *propertyRequest) fields() ports.PropertyFields {
	return ports.PropertyFields{
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		ExtraInfo:   req.ExtraInfo,
		Perks:       req.Perks,
		Photos:      req.Photos,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
	}
}

type propertyDetailResponse struct {
	*domain.Property
	Owner domain.PublicProfile `json:"owner"`
}

// Create handles POST /v1/properties. The authenticated subject becomes
// the owner.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      propertyRequest  true  "Property fields"
// @Success      201   {object}  domain.Property
// @Failure      401   {object}  map[string]string
// @Router       /v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), subject.ID, req.fields())
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, property)
}

// ListMine handles GET /v1/properties/mine.
//
// @Summary      List own properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Property
// @Failure      401  {object}  map[string]string
// @Router       /v1/properties/mine [get]
func (h *PropertyHandler) ListMine(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListByOwner(c.Request().Context(), subject.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// ListAll handles GET /v1/properties. Public.
//
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}  domain.Property
// @Router       /v1/properties [get]
func (h *PropertyHandler) ListAll(c echo.Context) error {
	properties, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Get handles GET /v1/properties/:id. Public; includes the owner's public
// display fields.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertyDetailResponse{
		Property: detail.Property,
		Owner:    detail.Owner,
	})
}

// Update handles PUT /v1/properties/:id. Owner only; an unknown id is 404
// before any ownership decision.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Property id"
// @Param        body  body      propertyRequest  true  "Property fields"
// @Success      200   {object}  domain.Property
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Update(c.Request().Context(), subject.ID, c.Param("id"), req.fields())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}
