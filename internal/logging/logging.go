package logging

import (
	"io"
	"log/slog"
	"strings"
)

func ParseLevel(raw string) slog.Leveler {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}
	return level
}

// Setup installs the default logger: JSON lines, or the human readable
// handler when pretty is set.
func Setup(w io.Writer, level string, pretty bool) *slog.Logger {
	lvl := ParseLevel(level)
	var handler slog.Handler
	if pretty {
		handler = NewPrettyHandler(w, lvl)
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
