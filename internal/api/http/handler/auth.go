package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// AuthService defines registration, login and password change operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	LoginOAuth(ctx context.Context, email, name string) (string, error)
	UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	errors         Errors
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, contextManager model.ContextManager, errors Errors, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		errors:         errors,
		logger:         logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a password account. No token is issued; the client logs
// in afterwards.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	h.logger.Debug("Auth handler: processing registration request", "email", req.Email)

	if err := h.service.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return created(c, "User registered successfully. Please login again", nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login verifies a password and returns a bearer token.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Login successful", tokenResponse{Token: token})
}

type oauthLoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginOAuth logs in an externally asserted identity, creating the account
// on first sight, and always returns a token.
func (h *Auth) LoginOAuth(c echo.Context) error {
	var req oauthLoginRequest
	if err := c.Bind(&req); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	h.logger.Debug("Auth handler: processing oauth login request", "email", req.Email)

	token, err := h.service.LoginOAuth(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		h.logger.Error("Auth handler: oauth login failed",
			"email", req.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Login successful", tokenResponse{Token: token})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePassword changes the caller's password after re-verifying the
// current one.
func (h *Auth) UpdatePassword(c echo.Context) error {
	identity, authed := h.contextManager.GetIdentityFromContext(c.Request().Context())
	if !authed {
		return h.errors.Write(c, model.ErrInvalidCredentials)
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return h.errors.Write(c, errInvalidBody)
	}

	h.logger.Debug("Auth handler: processing password update request", "email", identity.Email)

	if err := h.service.UpdatePassword(c.Request().Context(), identity.Email, req.CurrentPassword, req.NewPassword); err != nil {
		h.logger.Error("Auth handler: password update failed",
			"email", identity.Email,
			"error", err.Error())
		return h.errors.Write(c, err)
	}

	return ok(c, http.StatusOK, "Password updated successfully", nil)
}
