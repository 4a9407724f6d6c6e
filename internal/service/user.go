package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// User implements profile operations for the authenticated user plus the
// public user count.
type User struct {
	users   model.UserStore
	storage model.Storage
	logger  *logger.Logger
}

func NewUser(users model.UserStore, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		users:   users,
		storage: storage,
		logger:  logger,
	}
}

// Total returns the number of registered users.
func (u *User) Total(ctx context.Context) (int64, error) {
	total, err := u.users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return total, nil
}

// UpdateProfile patches the caller's own profile. Queries are scoped by the
// email from the verified identity, never by client-supplied email.
func (u *User) UpdateProfile(ctx context.Context, email, name, img string) error {
	email = strings.ToLower(email)

	u.logger.Debug("User service: updating profile", "email", email)

	if err := u.users.UpdateProfile(ctx, email, name, img); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// UploadAvatar stores a profile image in object storage under a fresh key,
// points the user's img field at it and removes the previous object. Returns
// the new key.
func (u *User) UploadAvatar(ctx context.Context, email, filename string, reader io.Reader) (string, error) {
	email = strings.ToLower(email)

	u.logger.Debug("User service: uploading avatar", "email", email, "filename", filename)

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	key := uuid.NewString() + filepath.Ext(filename)
	if err := u.storage.Upload(ctx, key, reader); err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := u.users.UpdateProfile(ctx, email, "", key); err != nil {
		return "", fmt.Errorf("failed to store avatar key: %w", err)
	}

	// Removing the replaced object is best-effort; a stray object is
	// harmless compared to failing the upload.
	if user.Img != "" {
		if err := u.storage.Delete(ctx, user.Img); err != nil {
			u.logger.Error("User service: failed to delete previous avatar",
				"email", email,
				"key", user.Img,
				"error", err.Error())
		}
	}

	u.logger.Info("User service: avatar uploaded", "email", email, "key", key)

	return key, nil
}

// Avatar streams a stored profile image by key.
func (u *User) Avatar(ctx context.Context, key string) (io.ReadCloser, error) {
	exists, err := u.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check avatar existence: %w", err)
	}
	if !exists {
		return nil, model.ErrNotFound
	}

	reader, err := u.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to download avatar: %w", err)
	}

	return reader, nil
}
