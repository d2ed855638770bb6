//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op where no native RSS query is wired; the
// goroutine logger still covers heap stats.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
