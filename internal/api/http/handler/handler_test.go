package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpctx "github.com/respite-app/respite-server/internal/api/http/context"
	"github.com/respite-app/respite-server/internal/model"
)

// newJSONContext builds an echo context carrying a JSON request body.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withIdentity attaches a verified identity to the request context the same
// way the auth middleware does.
func withIdentity(c echo.Context, identity model.Identity) {
	ctx := httpctx.NewManager().SetIdentityToContext(c.Request().Context(), identity)
	c.SetRequest(c.Request().WithContext(ctx))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()
	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
