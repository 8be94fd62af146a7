package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/api/metrics"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// StaffHandler handles HTTP requests for staff user records.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// List returns every staff user.
//
// @Summary      List staff users
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.StaffUser
// @Failure      401  {object}  errorResponse
// @Router       /v1/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single staff user by id.
//
// @Summary      Get a staff user
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Staff id"
// @Success      200  {object}  domain.StaffUser
// @Failure      404  {object}  errorResponse
// @Router       /v1/staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create registers a new staff user.
//
// @Summary      Create a staff user
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStaffRequest  true  "Staff details"
// @Success      201   {object}  domain.StaffUser
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), p, req.input())
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("staff_user", "create").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update applies a sparse patch to a staff user.
//
// @Summary      Update a staff user
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Staff id"
// @Param        body  body      updateStaffRequest  true  "Fields to change"
// @Success      200   {object}  domain.StaffUser
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/staff/{id} [patch]
func (h *StaffHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), p, id, req.patch())
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("staff_user", "update").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete removes a staff user and revokes its credentials.
//
// @Summary      Delete a staff user
// @Tags         staff
// @Security     BearerAuth
// @Param        id  path  int  true  "Staff id"
// @Success      204  "No Content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/staff/{id} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("staff_user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
