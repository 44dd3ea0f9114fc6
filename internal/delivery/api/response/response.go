// Package response renders the directory API's JSON envelopes.
package response

import (
	"net/http"

	deliverycontext "github.com/dac-os/auth/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "ACCOUNT_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Only ever sent with 400, 404 and 409
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
	Page      *int   `json:"page,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Page returns one page of a listing. The zero-based page number is echoed in meta.
func Page(c echo.Context, page int, items any) error {
	m := meta(c)
	m.Page = &page

	return c.JSON(http.StatusOK, SuccessResponse{Data: items, Meta: m})
}

// Error returns an error response. Details never leave the server for
// authentication, authorization or server-side failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

// ValidationFailed returns a 400 listing the offending fields.
func ValidationFailed(c echo.Context, fields map[string]string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", fields)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}
