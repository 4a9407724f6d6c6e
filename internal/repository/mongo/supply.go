package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/respite-app/respite-server/internal/model"
)

var _ model.SupplyStore = (*SupplyRepository)(nil)

type SupplyRepository struct {
	collection *mongo.Collection
}

func NewSupplyRepository(db *Connection) *SupplyRepository {
	return &SupplyRepository{
		collection: db.Collection("supplies"),
	}
}

func (r *SupplyRepository) Create(ctx context.Context, supply model.Supply) (model.Supply, error) {
	result, err := r.collection.InsertOne(ctx, supply)
	if err != nil {
		return model.Supply{}, fmt.Errorf("failed to create supply: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		supply.ID = id
	}

	return supply, nil
}

func (r *SupplyRepository) List(ctx context.Context, category string) ([]model.Supply, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}

	supplies := []model.Supply{}
	if err := cursor.All(ctx, &supplies); err != nil {
		return nil, fmt.Errorf("failed to decode supplies: %w", err)
	}

	return supplies, nil
}

func (r *SupplyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Supply, error) {
	var supply model.Supply
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&supply)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Supply{}, model.ErrNotFound
		}
		return model.Supply{}, fmt.Errorf("failed to get supply by id: %w", err)
	}

	return supply, nil
}

func (r *SupplyRepository) Update(ctx context.Context, id primitive.ObjectID, patch model.SupplyPatch) error {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update supply: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *SupplyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete supply: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
