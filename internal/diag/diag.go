// Package diag reports failures that happen inside the logging pipeline
// itself. Those cannot be logged through the pipeline, so they go to
// standard error through a small zap logger instead.
package diag

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Reporter receives internal failures. Implementations must be safe for
// concurrent use and must never panic.
type Reporter interface {
	Report(msg string, err error)
}

// ZapReporter writes failures to a zap logger.
type ZapReporter struct {
	log *zap.Logger
}

// NewZapReporter builds a reporter that writes console-encoded records to w.
// A nil writer means os.Stderr.
func NewZapReporter(w io.Writer) *ZapReporter {
	if w == nil {
		w = os.Stderr
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.ErrorLevel,
	)
	return &ZapReporter{log: zap.New(core).Named("lcl2log")}
}

// Report logs err at error level.
func (r *ZapReporter) Report(msg string, err error) {
	r.log.Error(msg, zap.Error(err))
}

// Sync flushes buffered records.
func (r *ZapReporter) Sync() error {
	return r.log.Sync()
}

var (
	stderrOnce     sync.Once
	stderrReporter *ZapReporter
)

// Stderr returns the shared reporter bound to os.Stderr.
func Stderr() *ZapReporter {
	stderrOnce.Do(func() {
		stderrReporter = NewZapReporter(os.Stderr)
	})
	return stderrReporter
}

// Recorder is a Reporter that keeps reported failures in memory.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Record is one reported failure.
type Record struct {
	Msg string
	Err error
}

// Report stores the failure.
func (r *Recorder) Report(msg string, err error) {
	r.mu.Lock()
	r.records = append(r.records, Record{Msg: msg, Err: err})
	r.mu.Unlock()
}

// Records returns a copy of everything reported so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
