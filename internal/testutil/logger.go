package testutil

import "log/slog"

// NopLogger is the logger handed to games, hubs and handlers under test
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
