package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/respite-app/respite-server/internal/api/http/context"
	"github.com/respite-app/respite-server/internal/mocks"
	"github.com/respite-app/respite-server/internal/model"
	"github.com/respite-app/respite-server/internal/testutil"
)

func newAuthHandler(service AuthService) *Auth {
	return NewAuth(service, httpctx.NewManager(), NewErrors(false), testutil.MakeNoopLogger())
}

func TestAuthHandler_Register_Success(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("Register", mock.Anything, "Ada", "ada@example.com", "s3cret").Return(nil)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/register", `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully. Please login again", body.Message)
	// Registration never hands out a token.
	assert.Nil(t, body.Data)
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("Register", mock.Anything, "Ada", "ada@example.com", "s3cret").Return(model.ErrEmailTaken)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/register", `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "User already exists", body.Message)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("Login", mock.Anything, "ada@example.com", "s3cret").Return("tok", nil)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/login", `{"email":"ada@example.com","password":"s3cret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful", body.Message)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok", data["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("Login", mock.Anything, "ada@example.com", "wrong").Return("", model.ErrInvalidCredentials)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/login", `{"email":"ada@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeResponse(t, rec).Message)
}

func TestAuthHandler_LoginOAuth_Success(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("LoginOAuth", mock.Anything, "new@example.com", "New").Return("tok", nil)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/login/oauth", `{"email":"new@example.com","name":"New"}`)
	require.NoError(t, h.LoginOAuth(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Login successful", body.Message)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok", data["token"])
}

func TestAuthHandler_UpdatePassword_Success(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("UpdatePassword", mock.Anything, "ada@example.com", "old", "new").Return(nil)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/user/password", `{"currentPassword":"old","newPassword":"new"}`)
	withIdentity(c, model.Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, h.UpdatePassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password updated successfully", decodeResponse(t, rec).Message)
}

func TestAuthHandler_UpdatePassword_NoIdentity(t *testing.T) {
	service := &mocks.AuthService{}

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/user/password", `{"currentPassword":"old","newPassword":"new"}`)
	require.NoError(t, h.UpdatePassword(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_UpdatePassword_WrongCurrent(t *testing.T) {
	service := &mocks.AuthService{}
	service.On("UpdatePassword", mock.Anything, "ada@example.com", "bad", "new").Return(model.ErrInvalidCredentials)

	h := newAuthHandler(service)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/user/password", `{"currentPassword":"bad","newPassword":"new"}`)
	withIdentity(c, model.Identity{Email: "ada@example.com"})
	require.NoError(t, h.UpdatePassword(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeResponse(t, rec).Message)
}
