package middleware

import (
	"log/slog"

	"github.com/dac-os/auth/internal/delivery/api/response"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// SessionMiddleware resolves the session token header and gates routes on permissions.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// Resolve attaches the session account to the request when the token header names a live session.
// Requests without a usable token continue anonymously; a token store failure aborts the request.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(deliverycontext.HeaderSessionToken)
		if token == "" {
			return next(c)
		}

		account, found, err := m.sessions.Validate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}
		if found {
			deliverycontext.SetSessionAccount(c, account)
		}

		return next(c)
	}
}

// RequireSession rejects anonymous requests. It must be used AFTER Resolve.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetSessionAccount(c) == nil {
			return response.Forbidden(c, "SESSION_REQUIRED", "A valid session token is required")
		}

		return next(c)
	}
}

// RequirePermission is a middleware factory that checks the session account's profile for permission.
// It must be used AFTER Resolve.
func (m *SessionMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := deliverycontext.GetSessionAccount(c)
			if !m.sessions.Authorize(account, permission) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Permission denied",
					slog.String("permission", permission),
					slog.Bool("anonymous", account == nil),
				)

				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+permission+"'")
			}

			return next(c)
		}
	}
}
