package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/respite-app/respite-server/internal/api/http/context"
	"github.com/respite-app/respite-server/internal/mocks"
	"github.com/respite-app/respite-server/internal/model"
	"github.com/respite-app/respite-server/internal/testutil"
)

func newDonationHandler(service DonationService) *Donation {
	return NewDonation(service, httpctx.NewManager(), NewErrors(false), testutil.MakeNoopLogger())
}

func TestDonationHandler_Create(t *testing.T) {
	service := &mocks.DonationService{}

	identity := model.Identity{Email: "ada@example.com", Name: "Ada"}
	service.On("Create", mock.Anything, identity, mock.MatchedBy(func(don model.Donation) bool {
		return don.Category == "Food" && don.Amount == 25
	})).Return(model.Donation{UserEmail: "ada@example.com", Category: "Food", Amount: 25}, nil)

	h := newDonationHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/donate", `{"category":"Food","amount":25}`)
	withIdentity(c, identity)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Thanks for your donation", body.Message)
}

func TestDonationHandler_Create_NoIdentity(t *testing.T) {
	service := &mocks.DonationService{}

	h := newDonationHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/donate", `{"category":"Food","amount":25}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestDonationHandler_Statistics(t *testing.T) {
	service := &mocks.DonationService{}
	service.On("Statistics", mock.Anything).Return([]model.CategoryStat{
		{Category: "Food", Total: 3, Percentage: 75},
		{Category: "Clothing", Total: 1, Percentage: 25},
	}, nil)

	h := newDonationHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/donate/statics", "")
	require.NoError(t, h.Statistics(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "donation statistics retrieved successfully", body.Message)
	data, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestDonationHandler_Leaderboard(t *testing.T) {
	service := &mocks.DonationService{}
	service.On("Leaderboard", mock.Anything).Return([]model.LeaderboardEntry{
		{UserEmail: "big@example.com", Name: "Big", TotalDonations: 500, HighestDonation: 300},
	}, nil)

	h := newDonationHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/donate/leaderboard", "")
	require.NoError(t, h.Leaderboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "leaderboard retrieved successfully", body.Message)
	data, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	entry, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "big@example.com", entry["userEmail"])
	assert.Equal(t, float64(500), entry["totalDonations"])
}
