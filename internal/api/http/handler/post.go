package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// PostService defines community feed operations.
type PostService interface {
	Create(ctx context.Context, identity model.Identity, content, image string) (model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
}

// Post handles HTTP endpoints for the community feed.
type Post struct {
	service        PostService
	contextManager model.ContextManager
	errors         Errors
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(service PostService, contextManager model.ContextManager, errors Errors, logger *logger.Logger) *Post {
	return &Post{
		service:        service,
		contextManager: contextManager,
		errors:         errors,
		logger:         logger,
	}
}

type createPostRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

func (h *Post) Create(c echo.Context) error {
	identity, authed := h.contextManager.GetIdentityFromContext(c.Request().Context())
	if !authed {
		return h.errors.Write(c, model.ErrTokenInvalid)
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	post, err := h.service.Create(c.Request().Context(), identity, req.Content, req.Image)
	if err != nil {
		h.logger.Error("Post handler: creation failed",
			"email", identity.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Successfully posted!", post)
}

// List returns the feed, newest first.
func (h *Post) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Post handler: listing failed", "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Successfully retrieved posts", posts)
}
