// Package context carries request-scoped values from the echo layer down to the usecases:
// the request ID, a logger tagged with it, and the account behind the session token.
package context

import (
	"context"
	"log/slog"

	"github.com/dac-os/auth/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderSessionToken carries the session token on authenticated requests.
	HeaderSessionToken = "csrf-token"
)

// echo.Context keys
const (
	echoKeyRequestID      = "request_id"
	echoKeySessionAccount = "session_account"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// GetRequestID returns the request ID stored on c, or "" outside the request-id middleware.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext extracts the request ID from ctx, or "" if there is none.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetSessionAccount stores the authenticated account on c. When the request already
// carries a scoped logger, that logger is re-tagged with the account's registry.
func SetSessionAccount(c echo.Context, account *entity.Account) {
	c.Set(echoKeySessionAccount, account)

	ctx := c.Request().Context()
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		tagged := logger.With(slog.String("registry", account.Registry))
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, tagged)))
	}
}

// GetSessionAccount returns the authenticated account, or nil for anonymous requests.
func GetSessionAccount(c echo.Context) *entity.Account {
	account, _ := c.Get(echoKeySessionAccount).(*entity.Account)

	return account
}
