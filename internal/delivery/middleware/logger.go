package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"nativoseo/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLog returns the access log middleware. Query strings and request headers are
// logged only in debug mode; health probes are never logged.
func NewAccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	debug := cfg != nil && cfg.Env.Debug

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:      slog.LevelInfo,
		ClientErrorLevel:  slog.LevelWarn,
		ServerErrorLevel:  slog.LevelError,
		WithUserAgent:     debug,
		WithRequestID:     true,
		WithRequestHeader: debug,
		Filters: []slogecho.Filter{
			func(c echo.Context) bool {
				return !(c.Request().Method == http.MethodGet && strings.HasPrefix(c.Path(), "/health"))
			},
		},
	})
}
