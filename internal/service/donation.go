package service

import (
	"context"
	"fmt"
	"time"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// Donation implements donation creation and the aggregation views.
type Donation struct {
	donations model.DonationStore
	logger    *logger.Logger
}

func NewDonation(donations model.DonationStore, logger *logger.Logger) *Donation {
	return &Donation{
		donations: donations,
		logger:    logger,
	}
}

// Create records a donation. Donor email and name come from the verified
// identity, not the request body.
func (d *Donation) Create(ctx context.Context, identity model.Identity, donation model.Donation) (model.Donation, error) {
	donation.UserEmail = identity.Email
	donation.Name = identity.Name
	if donation.Date.IsZero() {
		donation.Date = time.Now()
	}

	d.logger.Debug("Donation service: creating donation",
		"email", donation.UserEmail,
		"category", donation.Category,
		"amount", donation.Amount)

	created, err := d.donations.Create(ctx, donation)
	if err != nil {
		return model.Donation{}, fmt.Errorf("failed to create donation: %w", err)
	}

	return created, nil
}

// Statistics returns donation counts and percentages grouped by category.
func (d *Donation) Statistics(ctx context.Context) ([]model.CategoryStat, error) {
	stats, err := d.donations.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get donation statistics: %w", err)
	}

	return stats, nil
}

// Leaderboard returns donors ordered by total donated amount.
func (d *Donation) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	entries, err := d.donations.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}
