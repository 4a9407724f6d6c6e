package service

import (
	"context"
	"fmt"
	"time"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// Post implements the community post feed.
type Post struct {
	posts  model.PostStore
	logger *logger.Logger
}

func NewPost(posts model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		posts:  posts,
		logger: logger,
	}
}

// Create publishes a post stamped with the author's verified identity.
func (p *Post) Create(ctx context.Context, identity model.Identity, content, image string) (model.Post, error) {
	p.logger.Debug("Post service: creating post", "email", identity.Email)

	post := model.Post{
		AuthorEmail: identity.Email,
		AuthorName:  identity.Name,
		AuthorImg:   identity.Img,
		Content:     content,
		Image:       image,
		Date:        time.Now(),
	}

	created, err := p.posts.Create(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// List returns the feed, newest first.
func (p *Post) List(ctx context.Context) ([]model.Post, error) {
	posts, err := p.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}
