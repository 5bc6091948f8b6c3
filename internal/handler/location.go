package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/service"
)

// LocationHandler exposes direct location CRUD. The entity-keyed read
// answers 200 with a null body for an entity without a location — the
// absence of a location is data, not an error.
type LocationHandler struct {
	Locations *service.LocationService
}

// NewLocationHandler constructs a LocationHandler.
func NewLocationHandler(locations *service.LocationService) *LocationHandler {
	return &LocationHandler{Locations: locations}
}

// Create inserts a new location.
func (h *LocationHandler) Create(c echo.Context) error {
	var in service.LocationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Locations.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

// Get returns one location by primary key.
func (h *LocationHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Locations.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

// GetByEntity returns the location attached to an entity, or null.
func (h *LocationHandler) GetByEntity(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Locations.GetByEntity(ctx, c.Param("entity_type"), c.Param("entity_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l) // l may be nil -> JSON null
}

// Update merges a partial patch into one location.
func (h *LocationHandler) Update(c echo.Context) error {
	var patch service.LocationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Locations.Update(ctx, c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

// Delete removes one location and returns the deleted row.
func (h *LocationHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Locations.Delete(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}
