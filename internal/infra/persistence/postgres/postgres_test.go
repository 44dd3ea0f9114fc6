package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/dac-os/auth/config"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, ok := poolWait(prev, prev)
	assert.False(t, ok, "no new waits")

	level, attrs, ok := poolWait(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond, InUse: 4})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 10*time.Millisecond))
	assert.Contains(t, attrs, slog.Int("in_use_conns", 4))

	level, _, ok = poolWait(prev, sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestMigrateOnStart(t *testing.T) {
	assert.False(t, migrateOnStart(&config.Config{}))
	assert.False(t, migrateOnStart(&config.Config{Schema: &config.SchemaConfig{}}))
	assert.True(t, migrateOnStart(&config.Config{Schema: &config.SchemaConfig{MigrateOnStart: true}}))
}
