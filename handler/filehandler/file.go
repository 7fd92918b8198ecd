package filehandler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/lcl2log/core"
	"github.com/philipp01105/lcl2log/handler"
	"github.com/philipp01105/lcl2log/internal/diag"
)

var _ handler.StatsProvider = (*FileHandler)(nil)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("file handler closed")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Dir is the documents directory holding LCL2.txt. Ignored when Store is set.
	Dir string
	// Store overrides the on-disk FileStore
	Store Store
	// Reporter receives write and delete failures (default: diag.Stderr())
	Reporter diag.Reporter
	// WriteTimeout bounds each batch append (0 = no timeout)
	WriteTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Reporter == nil {
		cfg.Reporter = diag.Stderr()
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// FileHandler queues lines and appends them to the store in batches.
type FileHandler struct {
	store        Store
	reporter     diag.Reporter
	writeTimeout time.Duration
	drainTimeout time.Duration
	stats        *handler.Stats

	mu      sync.Mutex
	queue   []string
	writing bool
	// drained is closed when the current drain loop exits
	drained chan struct{}
	closed  bool
}

// NewFileHandler creates a new file handler. Unless cfg.Store is set,
// the documents directory is created if it does not exist.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	applyFileDefaults(&cfg)

	store := cfg.Store
	if store == nil {
		fileStore, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	}

	return &FileHandler{
		store:        store,
		reporter:     cfg.Reporter,
		writeTimeout: cfg.WriteTimeout,
		drainTimeout: cfg.DrainTimeout,
		stats:        handler.NewStats(),
	}, nil
}

// Handle queues the line and starts a drain loop unless one is running.
func (h *FileHandler) Handle(_ core.Level, line string) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.queue = append(h.queue, line)
	h.stats.IncrementEnqueued()

	if h.writing {
		h.mu.Unlock()
		return nil
	}
	h.writing = true
	drained := make(chan struct{})
	h.drained = drained
	h.mu.Unlock()

	go h.drain(drained)
	return nil
}

// drain writes batches until the queue is empty. Only one drain runs at
// a time; the writing flag is cleared under the same lock that observes
// the empty queue, so a line queued afterwards starts a new drain.
func (h *FileHandler) drain(drained chan struct{}) {
	defer close(drained)
	for {
		h.mu.Lock()
		if len(h.queue) == 0 {
			h.writing = false
			h.mu.Unlock()
			return
		}
		batch := h.queue
		h.queue = nil
		h.mu.Unlock()

		h.writeBatch(batch)
	}
}

var blobPool bytebufferpool.Pool

// writeBatch appends batch as one newline-terminated blob.
func (h *FileHandler) writeBatch(batch []string) {
	buf := blobPool.Get()
	defer blobPool.Put(buf)

	for _, line := range batch {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	ctx := context.Background()
	if h.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.writeTimeout)
		defer cancel()
	}

	err := h.store.Append(ctx, buf.B)
	h.stats.RecordFlush(len(batch), err)
	if err != nil {
		h.reporter.Report("failed to write log batch",
			fmt.Errorf("append %d lines to %s: %w", len(batch), h.store.Path(), err))
	}
}

// Flush blocks until every queued line has been written (or dropped) and
// no write is in flight, or until ctx is done.
func (h *FileHandler) Flush(ctx context.Context) error {
	for {
		h.mu.Lock()
		if !h.writing {
			h.mu.Unlock()
			return nil
		}
		drained := h.drained
		h.mu.Unlock()

		select {
		case <-drained:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Logs returns the whole log file, or "" if it is missing or unreadable.
func (h *FileHandler) Logs() string {
	data, err := h.store.ReadAll()
	if err != nil {
		return ""
	}
	return string(data)
}

// ClearLogs deletes the log file. A missing file is not an error; any
// other failure is reported and swallowed.
func (h *FileHandler) ClearLogs() {
	err := h.store.Remove()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	h.reporter.Report("failed to clear log file", err)
}

// Path returns the log file path.
func (h *FileHandler) Path() string {
	return h.store.Path()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops accepting lines and waits up to the drain timeout for the
// queue to be written.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), h.drainTimeout)
	defer cancel()
	if err := h.Flush(ctx); err != nil {
		return fmt.Errorf("drain log queue: %w", err)
	}
	return nil
}
