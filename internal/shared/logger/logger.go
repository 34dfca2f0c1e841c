package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment.
// LOG_LEVEL (debug|info|warn|error) overrides the environment default.
func Setup(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	development := env == "local" || env == "dev" || env == "development"
	if development {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	if level, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
		opts.Level = level
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if env == "production" || env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))

	slog.Info("Logger 초기화", "env", env, "level", opts.Level.Level().String())
}

// ParseLevel maps a level name to slog.Level
func ParseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return level, false
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, false
	}
	return level, true
}
