package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationStore defines persistence and aggregation operations for donations.
type DonationStore interface {
	Create(ctx context.Context, donation Donation) (Donation, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// Donation represents a single donation made by a user.
type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Amount    float64            `bson:"amount" json:"amount"`
	Date      time.Time          `bson:"date" json:"date"`
}

// CategoryStat is one row of the per-category donation statistics: the
// number of donations in the category and its share of all donations.
type CategoryStat struct {
	Category   string  `bson:"_id" json:"category"`
	Total      int64   `bson:"total" json:"total"`
	Percentage float64 `bson:"percentage" json:"percentage"`
}

// LeaderboardEntry is one row of the public donor leaderboard, ordered by
// total donated amount.
type LeaderboardEntry struct {
	UserEmail       string  `bson:"_id" json:"userEmail"`
	Name            string  `bson:"name" json:"name"`
	TotalDonations  float64 `bson:"totalDonations" json:"totalDonations"`
	HighestDonation float64 `bson:"highestDonation" json:"highestDonation"`
}
