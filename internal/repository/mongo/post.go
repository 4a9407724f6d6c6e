package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/respite-app/respite-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = id
	}

	return post, nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}
