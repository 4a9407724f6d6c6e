package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupplyStore defines persistence operations for relief supplies.
type SupplyStore interface {
	Create(ctx context.Context, supply Supply) (Supply, error)
	List(ctx context.Context, category string) ([]Supply, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Supply, error)
	Update(ctx context.Context, id primitive.ObjectID, patch SupplyPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Supply represents a relief supply item.
type Supply struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// SupplyPatch carries the fields of a partial supply update. Nil fields are
// left untouched.
type SupplyPatch struct {
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	Quantity    *int64  `json:"quantity,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}
