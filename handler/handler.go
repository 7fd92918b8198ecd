package handler

import (
	"github.com/philipp01105/lcl2log/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes one formatted log line (no trailing newline)
	Handle(level core.Level, line string) error
	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep counters
type StatsProvider interface {
	Stats() Snapshot
}
