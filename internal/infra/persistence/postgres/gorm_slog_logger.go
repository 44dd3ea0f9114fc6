package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dac-os/auth/config"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes gorm output into slog. Statements are logged with their
// placeholders only: bind values include password hashes, session tokens and personal data.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface  = (*gormSlogLogger)(nil)
	_ gorm.ParamsFilter = (*gormSlogLogger)(nil)
)

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops every bind value before gorm renders the statement for logging.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed, slow and (in debug mode) all statements.
// Missing rows are normal lookups. Unique violations are expected on registry retries and
// duplicate profile names, so they are logged as warnings.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil && isUniqueConstraintViolation(err):
		if l.level >= logger.Warn {
			l.logQuery(ctx, slog.LevelWarn, "GORM unique violation", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
		}

		return
	case err != nil:
		if l.level >= logger.Error {
			l.logQuery(ctx, slog.LevelError, "GORM query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
		}

		return
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn {
		l.logQuery(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed, slog.Duration("slowThreshold", l.slowThreshold))

		return
	}

	if l.level >= logger.Info {
		l.logQuery(ctx, slog.LevelDebug, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) logQuery(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// loggerFor prefers the request-scoped logger so statements carry the request id.
func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
