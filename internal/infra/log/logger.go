package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dac-os/auth/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	// Parse log level from config
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	return newLogger(os.Stdout, params.Config.Env.Log.Pretty, level, params.Config.Env.ServiceName), nil
}

// redactedKeys are attribute keys whose values must never reach the log sink.
var redactedKeys = map[string]struct{}{
	"password":      {},
	"password_hash": {},
	"token":         {},
	"csrf-token":    {},
	"authorization": {},
}

// redactSecrets masks credentials however deeply they are grouped.
func redactSecrets(_ []string, attr slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, "[REDACTED]")
	}

	return attr
}

func newLogger(w io.Writer, pretty bool, level slog.Level, serviceName string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redactSecrets}

	var handler slog.Handler
	if pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if serviceName != "" {
		logger = logger.With(slog.String("service", serviceName))
	}

	return logger
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
