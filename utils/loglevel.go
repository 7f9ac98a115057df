package utils

import "log/slog"

// ParseLogLevel maps a command-line level string to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, err
	}

	return l, nil
}
