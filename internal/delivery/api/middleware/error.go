// Package middleware holds the echo middleware specific to the directory API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dac-os/auth/internal/delivery/api/response"
	"github.com/dac-os/auth/internal/delivery/api/validator"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		// Error drops details for 401, 403 and 5xx
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), errorDetails(err))

		return
	}

	if fields := validator.FieldErrors(err); fields != nil {
		_ = response.ValidationFailed(c, fields)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// errorDetails returns the context wrapped around an AppError, if any.
func errorDetails(err error) any {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return nil
	}
	if details := appErr.Details(); details != "" {
		return details
	}
	if msg := err.Error(); msg != appErr.Error() {
		return msg
	}

	return nil
}
