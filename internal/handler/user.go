package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/service"
)

// UserHandler exposes the user CRUD surface and application creation.
type UserHandler struct {
	Users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// List returns all users, newest first.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by path id.
func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Get(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Update applies a profile patch to the authenticated user's own
// record. Ownership is enforced by RequireSelf on the route; unknown
// body keys never reach the service because the bind target only has
// the allow-listed fields.
func (h *UserHandler) Update(c echo.Context) error {
	var patch service.UserPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Update(ctx, c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Delete removes the authenticated user's own record and echoes the
// identifying fields of what was deleted.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Users.Delete(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// CreateApplication lets the authenticated user apply to a job.
func (h *UserHandler) CreateApplication(c echo.Context) error {
	var in service.ApplicationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Users.CreateApplication(ctx, c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}
