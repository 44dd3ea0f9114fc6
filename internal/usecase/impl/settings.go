// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"math"
	"time"

	"github.com/dac-os/auth/config"
)

const (
	fallbackStoreTimeout        = 3 * time.Second
	fallbackPageSize            = 20
	fallbackRegistryMaxAttempts = 5
)

func storeTimeoutFrom(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Auth != nil && cfg.Auth.StoreTimeout > 0 {
		return cfg.Auth.StoreTimeout
	}

	return fallbackStoreTimeout
}

func pageSizeFrom(cfg *config.Config) int {
	if cfg != nil && cfg.Pagination != nil && cfg.Pagination.PageSize > 0 {
		return cfg.Pagination.PageSize
	}

	return fallbackPageSize
}

func registryAttemptsFrom(cfg *config.Config) int {
	if cfg != nil && cfg.Auth != nil && cfg.Auth.RegistryMaxAttempts > 0 {
		return cfg.Auth.RegistryMaxAttempts
	}

	return fallbackRegistryMaxAttempts
}

// pageOffset turns a zero-based page into a row offset. Negative pages read the first page;
// pages too far out for an int offset read past the last row instead of wrapping.
func pageOffset(page, size int) int {
	if page < 0 || size <= 0 {
		return 0
	}
	if page > math.MaxInt/size {
		page = math.MaxInt / size
	}

	return page * size
}

// detached returns a context that survives request cancellation but still gives up after timeout.
// Values such as the request logger and id are kept.
func detached(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
