package pixkern

import (
	"log/slog"

	"github.com/gogpu/pixkern/internal/logging"
)

// SetLogger configures the logger for pixkern and all its internal kernels.
// By default pixkern produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to restore the silent default.
//
// Log levels used by pixkern:
//   - [slog.LevelDebug]: row pass sizing, kernel cache misses, Poisson redraws
//   - [slog.LevelWarn]: Poisson sampling exhausted and replaced by a box kernel
//
// Example:
//
//	pixkern.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by pixkern.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.L()
}
