package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/respite-app/respite-server/internal/logger"
)

// Logging logs every HTTP request with its status and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		l.logger.Debug("HTTP request started",
			"method", c.Request().Method,
			"path", c.Request().URL.Path)

		err := next(c)

		duration := time.Since(start)
		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		l.logger.Info("HTTP request completed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds())

		if err != nil {
			l.logger.Error("HTTP request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err.Error())
		}

		return err
	}
}
