package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/lcl2log/core"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// ConsoleHandler writes every line, newline-terminated, with a single
// Write call so lines from concurrent callers never interleave.
type ConsoleHandler struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	return &ConsoleHandler{writer: cfg.Writer}
}

var bufPool bytebufferpool.Pool

// Handle writes the line followed by a newline.
func (h *ConsoleHandler) Handle(_ core.Level, line string) error {
	buf := bufPool.Get()
	buf.WriteString(line)
	buf.WriteByte('\n')

	h.mu.Lock()
	_, err := h.writer.Write(buf.B)
	h.mu.Unlock()

	bufPool.Put(buf)
	return err
}

// Close is a no-op. The underlying writer is not closed; standard output
// belongs to the process and keeps receiving lines after shutdown.
func (h *ConsoleHandler) Close() error {
	return nil
}
