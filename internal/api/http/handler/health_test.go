package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Handle(t *testing.T) {
	h := NewHealth()

	c, rec := newJSONContext(http.MethodGet, "/", "")
	require.NoError(t, h.Handle(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server is running smoothly", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}
