package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
	"github.com/respite-app/respite-server/internal/password"
)

// Auth implements the credential lifecycle: registration, password login,
// passwordless (OAuth-asserted) login, and password change.
type Auth struct {
	users        model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(users model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		users:        users,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a password account. It does not issue a token; the client
// logs in separately afterwards.
func (a *Auth) Register(ctx context.Context, name, email, plainPassword string) error {
	email = strings.ToLower(email)

	a.logger.Debug("Auth service: registering user", "email", email)

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists", "email", email)
		return model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := a.users.Create(ctx, user); err != nil {
		// The unique index backstops the lookup above against races.
		if errors.Is(err, model.ErrEmailTaken) {
			return model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully", "email", email)

	return nil
}

// Login verifies a password and issues a bearer token. Unknown email, wrong
// password and passwordless accounts all fail with the same generic error.
func (a *Auth) Login(ctx context.Context, email, plainPassword string) (string, error) {
	email = strings.ToLower(email)

	a.logger.Debug("Auth service: logging user in", "email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == "" || !password.Compare(plainPassword, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(model.Identity{Email: user.Email, Name: user.Name, Img: user.Img})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed", "email", email)

	return token, nil
}

// LoginOAuth logs in a user asserted by an external provider, creating a
// passwordless account on first sight of the email. The asserted email is
// trusted as-is; no ownership verification happens here.
func (a *Auth) LoginOAuth(ctx context.Context, email, name string) (string, error) {
	email = strings.ToLower(email)

	a.logger.Debug("Auth service: oauth login", "email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		now := time.Now()
		user, err = a.users.Create(ctx, model.User{
			Name:      name,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create oauth user: %w", err)
		}
		a.logger.Info("Auth service: created user from oauth login", "email", email)
	} else if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	token, err := a.tokenManager.Generate(model.Identity{Email: user.Email, Name: user.Name, Img: user.Img})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// UpdatePassword replaces the stored digest after verifying the current
// password. Previously issued tokens stay valid; there is no revocation.
func (a *Auth) UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	email = strings.ToLower(email)

	a.logger.Debug("Auth service: updating password", "email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == "" || !password.Compare(currentPassword, user.PasswordHash) {
		a.logger.Info("Auth service: current password mismatch", "email", email)
		return model.ErrInvalidCredentials
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, email, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password updated", "email", email)

	return nil
}
