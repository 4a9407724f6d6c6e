package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// TokenParser resolves identities from bearer tokens.
type TokenParser interface {
	Parse(token string) (model.Identity, error)
}

// Authenticate verifies bearer tokens on protected routes and attaches the
// decoded identity to the request context.
type Authenticate struct {
	tokens         TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

type rejection struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Handle walks the header state machine: missing header, header without a
// token segment, and failed verification each short-circuit with a distinct
// 401 message. On success the identity lands in the request context and the
// next handler runs. The scheme word is deliberately not validated; only the
// presence of a second whitespace-separated field matters.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, rejection{Message: "Authorization header missing"})
		}

		fields := strings.Fields(header)
		if len(fields) < 2 {
			return c.JSON(http.StatusUnauthorized, rejection{Message: "Token missing or invalid"})
		}

		identity, err := m.tokens.Parse(fields[1])
		if err != nil {
			m.logger.Info("Authenticate middleware: token rejected",
				"path", c.Request().URL.Path,
				"error", err.Error())
			return c.JSON(http.StatusUnauthorized, rejection{
				Message: "You are not Authorized",
				Error:   err.Error(),
			})
		}

		ctx := m.contextManager.SetIdentityToContext(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
