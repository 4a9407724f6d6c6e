package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// DonationService defines donation creation and aggregation operations.
type DonationService interface {
	Create(ctx context.Context, identity model.Identity, donation model.Donation) (model.Donation, error)
	Statistics(ctx context.Context) ([]model.CategoryStat, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

// Donation handles HTTP endpoints for donations.
type Donation struct {
	service        DonationService
	contextManager model.ContextManager
	errors         Errors
	logger         *logger.Logger
}

// NewDonation creates a new Donation handler.
func NewDonation(service DonationService, contextManager model.ContextManager, errors Errors, logger *logger.Logger) *Donation {
	return &Donation{
		service:        service,
		contextManager: contextManager,
		errors:         errors,
		logger:         logger,
	}
}

func (h *Donation) Create(c echo.Context) error {
	identity, authed := h.contextManager.GetIdentityFromContext(c.Request().Context())
	if !authed {
		return h.errors.Write(c, model.ErrTokenInvalid)
	}

	var donation model.Donation
	if err := c.Bind(&donation); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	created, err := h.service.Create(c.Request().Context(), identity, donation)
	if err != nil {
		h.logger.Error("Donation handler: creation failed",
			"email", identity.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Thanks for your donation", created)
}

// Statistics returns per-category donation counts and percentages.
func (h *Donation) Statistics(c echo.Context) error {
	stats, err := h.service.Statistics(c.Request().Context())
	if err != nil {
		h.logger.Error("Donation handler: statistics failed", "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "donation statistics retrieved successfully", stats)
}

// Leaderboard returns the public donor ranking.
func (h *Donation) Leaderboard(c echo.Context) error {
	entries, err := h.service.Leaderboard(c.Request().Context())
	if err != nil {
		h.logger.Error("Donation handler: leaderboard failed", "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "leaderboard retrieved successfully", entries)
}
