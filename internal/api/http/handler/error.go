package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/model"
)

// errInvalidBody marks request bodies that failed to bind.
var errInvalidBody = errors.New("invalid request body")

// Errors is the single error-translation boundary: every handler converts
// failures through it instead of replicating the mapping.
type Errors struct {
	// expose controls whether internal error details reach the client on
	// unexpected failures.
	expose bool
}

func NewErrors(expose bool) Errors {
	return Errors{expose: expose}
}

// Write converts a domain error into the response envelope with the matching
// HTTP status.
func (e Errors) Write(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errInvalidBody):
		return c.JSON(http.StatusBadRequest, response{Message: "Invalid request body"})
	case errors.Is(err, model.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, response{Message: "User already exists"})
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, response{Message: "Invalid email or password"})
	case errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenMalformed):
		return c.JSON(http.StatusUnauthorized, response{Message: "You are not Authorized", Error: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, response{Message: "Resource not found"})
	default:
		resp := response{Message: "something went wrong"}
		if e.expose {
			resp.Error = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}
}
