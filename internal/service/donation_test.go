package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/respite-app/respite-server/internal/mocks"
	"github.com/respite-app/respite-server/internal/model"
	"github.com/respite-app/respite-server/internal/testutil"
)

func TestDonation_Create_StampsIdentity(t *testing.T) {
	ctx := context.Background()
	donations := &mocks.DonationStore{}

	identity := model.Identity{Email: "ada@example.com", Name: "Ada"}
	donations.On("Create", mock.Anything, mock.MatchedBy(func(don model.Donation) bool {
		return don.UserEmail == "ada@example.com" &&
			don.Name == "Ada" &&
			don.Category == "Food" &&
			don.Amount == 25 &&
			!don.Date.IsZero()
	})).Return(model.Donation{UserEmail: "ada@example.com", Category: "Food", Amount: 25}, nil)

	d := NewDonation(donations, testutil.MakeNoopLogger())

	// Body-supplied donor fields must be overwritten with the verified identity.
	created, err := d.Create(ctx, identity, model.Donation{
		UserEmail: "spoofed@example.com",
		Name:      "Spoofed",
		Category:  "Food",
		Amount:    25,
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.UserEmail)
	donations.AssertExpectations(t)
}

func TestDonation_Create_KeepsProvidedDate(t *testing.T) {
	ctx := context.Background()
	donations := &mocks.DonationStore{}

	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	donations.On("Create", mock.Anything, mock.MatchedBy(func(don model.Donation) bool {
		return don.Date.Equal(date)
	})).Return(model.Donation{Date: date}, nil)

	d := NewDonation(donations, testutil.MakeNoopLogger())

	_, err := d.Create(ctx, model.Identity{Email: "ada@example.com"}, model.Donation{Amount: 10, Date: date})
	require.NoError(t, err)
}

func TestDonation_Statistics(t *testing.T) {
	ctx := context.Background()
	donations := &mocks.DonationStore{}

	stats := []model.CategoryStat{
		{Category: "Food", Total: 3, Percentage: 75},
		{Category: "Clothing", Total: 1, Percentage: 25},
	}
	donations.On("CategoryStats", mock.Anything).Return(stats, nil)

	d := NewDonation(donations, testutil.MakeNoopLogger())

	got, err := d.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestDonation_Leaderboard(t *testing.T) {
	ctx := context.Background()
	donations := &mocks.DonationStore{}

	entries := []model.LeaderboardEntry{
		{UserEmail: "big@example.com", Name: "Big", TotalDonations: 500, HighestDonation: 300},
		{UserEmail: "small@example.com", Name: "Small", TotalDonations: 50, HighestDonation: 50},
	}
	donations.On("Leaderboard", mock.Anything).Return(entries, nil)

	d := NewDonation(donations, testutil.MakeNoopLogger())

	got, err := d.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestDonation_Statistics_Error(t *testing.T) {
	ctx := context.Background()
	donations := &mocks.DonationStore{}

	donations.On("CategoryStats", mock.Anything).Return(nil, assert.AnError)

	d := NewDonation(donations, testutil.MakeNoopLogger())

	_, err := d.Statistics(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get donation statistics")
}
