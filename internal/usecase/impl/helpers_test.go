package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dac-os/auth/config"
	mockService "github.com/dac-os/auth/internal/mocks/service"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:          4,
			StoreTimeout:        time.Second,
			RegistryMaxAttempts: 3,
		},
		Pagination: &config.PaginationConfig{PageSize: 20},
	}
}

func newFixedClock(t *testing.T, now time.Time) *mockService.MockClock {
	clock := mockService.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()

	return clock
}
