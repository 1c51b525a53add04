package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewSlog builds the process logger. Text output is colorized for terminals;
// JSON is meant for log collectors.
func NewSlog(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		})), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}
