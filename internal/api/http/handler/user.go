package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// UserService defines profile and user count operations.
type UserService interface {
	Total(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, email, name, img string) error
	UploadAvatar(ctx context.Context, email, filename string, reader io.Reader) (string, error)
	Avatar(ctx context.Context, key string) (io.ReadCloser, error)
}

// User handles HTTP endpoints for user profile operations.
type User struct {
	service        UserService
	contextManager model.ContextManager
	errors         Errors
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, contextManager model.ContextManager, errors Errors, logger *logger.Logger) *User {
	return &User{
		service:        service,
		contextManager: contextManager,
		errors:         errors,
		logger:         logger,
	}
}

type totalResponse struct {
	Total int64 `json:"total"`
}

// Total returns the number of registered users.
func (h *User) Total(c echo.Context) error {
	total, err := h.service.Total(c.Request().Context())
	if err != nil {
		h.logger.Error("User handler: failed to count users", "error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Users counted successfully", totalResponse{Total: total})
}

// Resolve returns the identity decoded from the caller's bearer token. The
// token travels in the Authorization header like every other protected
// route.
func (h *User) Resolve(c echo.Context) error {
	identity, authed := h.contextManager.GetIdentityFromContext(c.Request().Context())
	if !authed {
		return h.errors.Write(c, model.ErrTokenInvalid)
	}

	return ok(c, http.StatusOK, "User resolved successfully", identity)
}

type updateProfileRequest struct {
	Name string `json:"name"`
	Img  string `json:"img"`
}

// Update patches the caller's own profile.
func (h *User) Update(c echo.Context) error {
	identity, authed := h.contextManager.GetIdentityFromContext(c.Request().Context())
	if !authed {
		return h.errors.Write(c, model.ErrTokenInvalid)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	h.logger.Debug("User handler: processing profile update", "email", identity.Email)

	if err := h.service.UpdateProfile(c.Request().Context(), identity.Email, req.Name, req.Img); err != nil {
		h.logger.Error("User handler: profile update failed",
			"email", identity.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Profile updated successfully", nil)
}

type avatarResponse struct {
	Img string `json:"img"`
}

// UploadAvatar accepts a multipart image upload and stores it as the
// caller's profile image.
func (h *User) UploadAvatar(c echo.Context) error {
	identity, authed := h.contextManager.GetIdentityFromContext(c.Request().Context())
	if !authed {
		return h.errors.Write(c, model.ErrTokenInvalid)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	src, err := file.Open()
	if err != nil {
		return h.errors.Write(c, errInvalidBody)
	}
	defer src.Close()

	h.logger.Debug("User handler: processing avatar upload",
		"email", identity.Email,
		"filename", file.Filename)

	key, err := h.service.UploadAvatar(c.Request().Context(), identity.Email, file.Filename, src)
	if err != nil {
		h.logger.Error("User handler: avatar upload failed",
			"email", identity.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Avatar uploaded successfully", avatarResponse{Img: key})
}

// Avatar streams a stored profile image by key.
func (h *User) Avatar(c echo.Context) error {
	key := c.Param("key")

	reader, err := h.service.Avatar(c.Request().Context(), key)
	if err != nil {
		h.logger.Error("User handler: failed to fetch avatar",
			"key", key,
			"error", err.Error())
		return h.errors.Write(c, err)
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, "application/octet-stream", reader)
}
