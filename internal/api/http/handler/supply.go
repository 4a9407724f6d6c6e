package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// SupplyService defines CRUD operations over relief supplies.
type SupplyService interface {
	Create(ctx context.Context, supply model.Supply) (model.Supply, error)
	List(ctx context.Context, category string) ([]model.Supply, error)
	Get(ctx context.Context, id string) (model.Supply, error)
	Update(ctx context.Context, id string, patch model.SupplyPatch) error
	Delete(ctx context.Context, id string) error
}

// Supply handles HTTP endpoints for relief supplies.
type Supply struct {
	service SupplyService
	errors  Errors
	logger  *logger.Logger
}

// NewSupply creates a new Supply handler.
func NewSupply(service SupplyService, errors Errors, logger *logger.Logger) *Supply {
	return &Supply{
		service: service,
		errors:  errors,
		logger:  logger,
	}
}

func (h *Supply) Create(c echo.Context) error {
	var supply model.Supply
	if err := c.Bind(&supply); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	created, err := h.service.Create(c.Request().Context(), supply)
	if err != nil {
		h.logger.Error("Supply handler: creation failed", "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "supply created successfully", created)
}

// List returns all supplies, optionally filtered with ?category=.
func (h *Supply) List(c echo.Context) error {
	category := c.QueryParam("category")

	supplies, err := h.service.List(c.Request().Context(), category)
	if err != nil {
		h.logger.Error("Supply handler: listing failed", "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "supplies retrieved successfully", supplies)
}

func (h *Supply) Get(c echo.Context) error {
	id := c.Param("id")

	supply, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("Supply handler: fetch failed", "id", id, "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "supply retrieved successfully", supply)
}

func (h *Supply) Update(c echo.Context) error {
	id := c.Param("id")

	var patch model.SupplyPatch
	if err := c.Bind(&patch); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	if err := h.service.Update(c.Request().Context(), id, patch); err != nil {
		h.logger.Error("Supply handler: update failed", "id", id, "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "supply successfully updated", nil)
}

func (h *Supply) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Supply handler: deletion failed", "id", id, "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "supply successfully deleted", nil)
}
