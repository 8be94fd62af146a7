package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/api/metrics"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// ContractHandler handles HTTP requests for contract records.
type ContractHandler struct {
	service ports.ContractService
}

func NewContractHandler(service ports.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// List returns every contract.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contract
// @Failure      401  {object}  errorResponse
// @Router       /v1/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	contracts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contracts)
}

// Get returns a single contract by id.
//
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  domain.Contract
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	contract, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// Create registers a new contract for an existing client.
//
// @Summary      Create a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContractRequest  true  "Contract details"
// @Success      201   {object}  domain.Contract
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contract, err := h.service.Create(c.Request().Context(), p, req.input())
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("contract", "create").Inc()
	if contract.IsSigned {
		metrics.ContractsSignedTotal.Inc()
	}
	return c.JSON(http.StatusCreated, contract)
}

// Update applies a sparse patch to a contract.
//
// @Summary      Update a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Contract id"
// @Param        body  body      updateContractRequest  true  "Fields to change"
// @Success      200   {object}  domain.Contract
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/contracts/{id} [patch]
func (h *ContractHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prev, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	contract, err := h.service.Update(c.Request().Context(), p, id, req.patch())
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("contract", "update").Inc()
	// Count signatures, not signed re-submissions.
	if !prev.IsSigned && contract.IsSigned {
		metrics.ContractsSignedTotal.Inc()
	}
	return c.JSON(http.StatusOK, contract)
}
