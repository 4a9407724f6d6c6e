package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/respite-app/respite-server/internal/model"
)

var _ model.DonationStore = (*DonationRepository)(nil)

type DonationRepository struct {
	collection *mongo.Collection
}

func NewDonationRepository(db *Connection) *DonationRepository {
	return &DonationRepository{
		collection: db.Collection("donations"),
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation model.Donation) (model.Donation, error) {
	result, err := r.collection.InsertOne(ctx, donation)
	if err != nil {
		return model.Donation{}, fmt.Errorf("failed to create donation: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		donation.ID = id
	}

	return donation, nil
}

// CategoryStats groups donations by category and computes each category's
// share of all donations as a percentage.
func (r *DonationRepository) CategoryStats(ctx context.Context) ([]model.CategoryStat, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count donations: %w", err)
	}
	if total == 0 {
		return []model.CategoryStat{}, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "total", Value: 1},
			{Key: "percentage", Value: bson.D{{Key: "$multiply", Value: bson.A{
				bson.D{{Key: "$divide", Value: bson.A{"$total", total}}},
				100,
			}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donation statistics: %w", err)
	}

	stats := []model.CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode donation statistics: %w", err)
	}

	return stats, nil
}

// Leaderboard groups donations by donor email with summed and highest
// amounts, ordered by total donated descending.
func (r *DonationRepository) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$userEmail"},
			{Key: "totalDonations", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
			{Key: "highestDonation", Value: bson.D{{Key: "$max", Value: "$amount"}}},
			{Key: "name", Value: bson.D{{Key: "$first", Value: "$name"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalDonations", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leaderboard: %w", err)
	}

	entries := []model.LeaderboardEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}

	return entries, nil
}
