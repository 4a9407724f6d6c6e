package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health answers the unauthenticated status probe.
type Health struct{}

func NewHealth() *Health {
	return &Health{}
}

func (h *Health) Handle(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}
