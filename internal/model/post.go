package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostStore defines persistence operations for community posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	List(ctx context.Context) ([]Post, error)
}

// Post represents a community feed post. Author fields are stamped from the
// authenticated identity at creation time.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorImg   string             `bson:"authorImg,omitempty" json:"authorImg,omitempty"`
	Content     string             `bson:"content" json:"content"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
}
