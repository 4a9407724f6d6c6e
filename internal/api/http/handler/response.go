package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data})
}

func created(c echo.Context, message string, data any) error {
	return ok(c, http.StatusCreated, message, data)
}
