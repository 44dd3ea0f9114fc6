package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dac-os/auth/config"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes a verbose per-request line in debug mode. Access logs proper come from slog-echo.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle runs next and, in debug mode, logs the route, outcome and who made the call.
// Session tokens and credentials are never logged; only whether they were presented.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	if err != nil && !c.Response().Committed {
		// the error handler has not written the response yet
		status = statusOf(err)
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Bool("session_token", req.Header.Get(deliverycontext.HeaderSessionToken) != ""),
		slog.Bool("basic_auth", req.Header.Get(echo.HeaderAuthorization) != ""),
	}
	if account := deliverycontext.GetSessionAccount(c); account != nil {
		attrs = append(attrs, slog.String("caller", account.Registry))
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", attrs...)
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
