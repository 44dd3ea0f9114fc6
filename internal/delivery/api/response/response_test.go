package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "github.com/dac-os/auth/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestError_DetailsOnlyForClientErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusConflict, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusInternalServerError, false},
		{http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "message", "secret detail"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, "secret detail", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestPage_EchoesPageNumber(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Page(c, 0, []string{}))

	assert.JSONEq(t, `{"data":[],"meta":{"request_id":"req-1","page":0}}`, rec.Body.String())
}

func TestSuccess_OmitsPage(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"academicRegistry": "2026000014"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"academicRegistry":"2026000014"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}
