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

func newPostHandler(service PostService) *Post {
	return NewPost(service, httpctx.NewManager(), NewErrors(false), testutil.MakeNoopLogger())
}

func TestPostHandler_Create(t *testing.T) {
	service := &mocks.PostService{}

	identity := model.Identity{Email: "ada@example.com", Name: "Ada"}
	service.On("Create", mock.Anything, identity, "hello", "img.png").Return(model.Post{Content: "hello"}, nil)

	h := newPostHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/posts", `{"content":"hello","image":"img.png"}`)
	withIdentity(c, identity)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Successfully posted!", body.Message)
}

func TestPostHandler_Create_NoIdentity(t *testing.T) {
	service := &mocks.PostService{}

	h := newPostHandler(service)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/posts", `{"content":"hello"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostHandler_List(t *testing.T) {
	service := &mocks.PostService{}
	service.On("List", mock.Anything).Return([]model.Post{
		{Content: "newest"},
		{Content: "older"},
	}, nil)

	h := newPostHandler(service)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/posts", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Successfully retrieved posts", body.Message)
	data, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 2)
	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "newest", first["content"])
}
