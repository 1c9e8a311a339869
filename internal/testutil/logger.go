package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output. The service suites
// use it so roster and auth flows do not spam the test log.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
