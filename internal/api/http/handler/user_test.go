package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/respite-app/respite-server/internal/api/http/context"
	"github.com/respite-app/respite-server/internal/mocks"
	"github.com/respite-app/respite-server/internal/model"
	"github.com/respite-app/respite-server/internal/testutil"
)

func newUserHandler(service UserService) *User {
	return NewUser(service, httpctx.NewManager(), NewErrors(false), testutil.MakeNoopLogger())
}

func TestUserHandler_Total(t *testing.T) {
	service := &mocks.UserService{}
	service.On("Total", mock.Anything).Return(int64(42), nil)

	h := newUserHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/users/total", "")
	require.NoError(t, h.Total(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Users counted successfully", body.Message)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), data["total"])
}

func TestUserHandler_Resolve(t *testing.T) {
	service := &mocks.UserService{}

	h := newUserHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/user", "")
	withIdentity(c, model.Identity{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, h.Resolve(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "User resolved successfully", body.Message)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", data["email"])
	assert.Equal(t, "Ada", data["name"])
}

func TestUserHandler_Resolve_NoIdentity(t *testing.T) {
	service := &mocks.UserService{}

	h := newUserHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/user", "")
	require.NoError(t, h.Resolve(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_Update(t *testing.T) {
	service := &mocks.UserService{}
	service.On("UpdateProfile", mock.Anything, "ada@example.com", "Ada L.", "key.png").Return(nil)

	h := newUserHandler(service)

	c, rec := newJSONContext(http.MethodPut, "/api/v1/user", `{"name":"Ada L.","img":"key.png"}`)
	withIdentity(c, model.Identity{Email: "ada@example.com"})
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", decodeResponse(t, rec).Message)
	service.AssertExpectations(t)
}

func TestUserHandler_UploadAvatar(t *testing.T) {
	service := &mocks.UserService{}
	service.On("UploadAvatar", mock.Anything, "ada@example.com", "portrait.png", mock.Anything).Return("fresh-key.png", nil)

	h := newUserHandler(service)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "portrait.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("img-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/avatar", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, model.Identity{Email: "ada@example.com"})

	require.NoError(t, h.UploadAvatar(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Avatar uploaded successfully", body.Message)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fresh-key.png", data["img"])
}

func TestUserHandler_Avatar(t *testing.T) {
	service := &mocks.UserService{}
	service.On("Avatar", mock.Anything, "key.png").Return(io.NopCloser(strings.NewReader("img-bytes")), nil)

	h := newUserHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/user/avatar/key.png", "")
	c.SetParamNames("key")
	c.SetParamValues("key.png")
	require.NoError(t, h.Avatar(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "img-bytes", rec.Body.String())
}

func TestUserHandler_Avatar_NotFound(t *testing.T) {
	service := &mocks.UserService{}
	service.On("Avatar", mock.Anything, "missing.png").Return(nil, model.ErrNotFound)

	h := newUserHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/user/avatar/missing.png", "")
	c.SetParamNames("key")
	c.SetParamValues("missing.png")
	require.NoError(t, h.Avatar(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
