package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/domain/entity"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	mockUsecase "github.com/dac-os/auth/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type sessionFixtures struct {
	echo     *echo.Echo
	sessions *mockUsecase.MockSessionUsecase
	mw       *SessionMiddleware
}

func createTestSessionMiddleware(t *testing.T) sessionFixtures {
	f := sessionFixtures{echo: echo.New(), sessions: mockUsecase.NewMockSessionUsecase(t)}
	f.echo.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	f.mw = NewSessionMiddleware(SessionMiddlewareParams{Sessions: f.sessions, Logger: newDiscardLogger()})

	return f
}

// whoami echoes the resolved session registry, or "anonymous".
func whoami(c echo.Context) error {
	if account := deliverycontext.GetSessionAccount(c); account != nil {
		return c.String(http.StatusOK, account.Registry)
	}

	return c.String(http.StatusOK, "anonymous")
}

func serve(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(deliverycontext.HeaderSessionToken, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionMiddleware_Resolve(t *testing.T) {
	t.Run("no header stays anonymous without touching the store", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve)

		rec := serve(f.echo, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("unknown token stays anonymous", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve)
		f.sessions.EXPECT().Validate(mock.Anything, "stale").Return(nil, false, nil)

		rec := serve(f.echo, "stale")

		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("live token attaches the account", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve)
		f.sessions.EXPECT().Validate(mock.Anything, "live").Return(&entity.Account{Registry: "2026000014"}, true, nil)

		rec := serve(f.echo, "live")

		assert.Equal(t, "2026000014", rec.Body.String())
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve)
		f.sessions.EXPECT().
			Validate(mock.Anything, "live").
			Return(nil, false, errors.Wrap(domainerrors.ErrInfrastructure, "find session token: i/o timeout"))

		rec := serve(f.echo, "live")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INFRASTRUCTURE_ERROR")
		assert.NotContains(t, rec.Body.String(), "i/o timeout")
	})
}

func TestSessionMiddleware_RequirePermission(t *testing.T) {
	admin := &entity.Account{Registry: "2026000014", Profile: &entity.Profile{Permissions: []string{entity.PermissionChangeUser}}}

	t.Run("anonymous is forbidden", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve, f.mw.RequirePermission(entity.PermissionChangeUser))
		f.sessions.EXPECT().Authorize((*entity.Account)(nil), entity.PermissionChangeUser).Return(false)

		rec := serve(f.echo, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing permission is forbidden", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve, f.mw.RequirePermission(entity.PermissionChangeProfile))
		f.sessions.EXPECT().Validate(mock.Anything, "live").Return(admin, true, nil)
		f.sessions.EXPECT().Authorize(admin, entity.PermissionChangeProfile).Return(false)

		rec := serve(f.echo, "live")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("granted permission passes", func(t *testing.T) {
		f := createTestSessionMiddleware(t)
		f.echo.GET("/", whoami, f.mw.Resolve, f.mw.RequirePermission(entity.PermissionChangeUser))
		f.sessions.EXPECT().Validate(mock.Anything, "live").Return(admin, true, nil)
		f.sessions.EXPECT().Authorize(admin, entity.PermissionChangeUser).Return(true)

		rec := serve(f.echo, "live")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2026000014", rec.Body.String())
	})
}

func TestSessionMiddleware_RequireSession(t *testing.T) {
	f := createTestSessionMiddleware(t)
	f.echo.GET("/", whoami, f.mw.Resolve, f.mw.RequireSession)

	rec := serve(f.echo, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
