package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalserver "github.com/respite-app/respite-server/internal/server"
)

func TestHTTPServer_StartStop(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s := NewHTTPServer(e, "127.0.0.1:0")

	done := make(chan error, 1)
	go func() {
		done <- s.Start(internalserver.NewPlainListener())
	}()

	// Wait for the listener to come up.
	var addr string
	require.Eventually(t, func() bool {
		if e.Listener == nil {
			return false
		}
		addr = e.Listener.Addr().String()
		return true
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(echo.New(), "127.0.0.1:5000")
	assert.Equal(t, "127.0.0.1:5000", s.Address())
}

func TestHTTPServer_ListenError(t *testing.T) {
	s := NewHTTPServer(echo.New(), "256.256.256.256:0")

	err := s.Start(internalserver.NewPlainListener())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
