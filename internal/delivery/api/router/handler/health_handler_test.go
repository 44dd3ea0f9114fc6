package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
