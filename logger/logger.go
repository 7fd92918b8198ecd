package logger

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/multierr"

	"github.com/philipp01105/lcl2log/config"
	"github.com/philipp01105/lcl2log/core"
	"github.com/philipp01105/lcl2log/formatter"
	"github.com/philipp01105/lcl2log/handler"
	"github.com/philipp01105/lcl2log/handler/consolehandler"
	"github.com/philipp01105/lcl2log/handler/filehandler"
	"github.com/philipp01105/lcl2log/internal/diag"
)

// Level re-exports core.Level for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// Logger is the application's logging service. Build one at startup and
// pass it to every component that logs.
type Logger struct {
	level     atomic.Int32
	formatter formatter.Formatter
	appender  formatter.BufferFormatter
	handler   handler.Handler
	file      *filehandler.FileHandler
	counters  []handler.StatsProvider
	now       func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level     core.Level
	formatter formatter.Formatter
	stdout    bool
	console   consolehandler.ConsoleConfig
	file      *filehandler.FileHandler
	extra     []handler.Handler
	now       func() time.Time
}

// NewBuilder creates a new logger builder with INFO level and standard
// output mirroring enabled.
func NewBuilder() *Builder {
	return &Builder{
		level:  core.InfoLevel,
		stdout: true,
	}
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFormatter replaces the default line formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithStdout enables or disables standard output mirroring
func (b *Builder) WithStdout(enabled bool) *Builder {
	b.stdout = enabled
	return b
}

// WithConsole sets the console handler configuration (default: os.Stdout)
func (b *Builder) WithConsole(cfg consolehandler.ConsoleConfig) *Builder {
	b.console = cfg
	return b
}

// WithFileHandler sets the handler that persists lines to LCL2.txt
func (b *Builder) WithFileHandler(h *filehandler.FileHandler) *Builder {
	b.file = h
	return b
}

// WithHandler adds another handler after the console and file handlers
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.extra = append(b.extra, h)
	return b
}

// withClock overrides the time source (tests)
func (b *Builder) withClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	f := b.formatter
	if f == nil {
		f = formatter.NewLineFormatter(formatter.Config{})
	}

	// Console first: it is written before the line is queued for the file.
	var handlers []handler.Handler
	if b.stdout {
		handlers = append(handlers, consolehandler.NewConsoleHandler(b.console))
	}
	if b.file != nil {
		handlers = append(handlers, b.file)
	}
	handlers = append(handlers, b.extra...)

	var counters []handler.StatsProvider
	for _, h := range handlers {
		if sp, ok := h.(handler.StatsProvider); ok {
			counters = append(counters, sp)
		}
	}

	l := &Logger{
		formatter: f,
		handler:   handler.NewMultiHandler(handlers...),
		file:      b.file,
		counters:  counters,
		now:       b.now,
	}
	if bf, ok := f.(formatter.BufferFormatter); ok {
		l.appender = bf
	}
	l.level.Store(int32(b.level))
	return l
}

// New builds a Logger from cfg: console mirroring as configured and the
// file handler writing to cfg.DocumentsDir/LCL2.txt.
func New(cfg config.Config) (*Logger, error) {
	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Dir:          cfg.DocumentsDir,
		Reporter:     diag.Stderr(),
		WriteTimeout: time.Duration(cfg.WriteTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("create log file handler: %w", err)
	}

	return NewBuilder().
		WithLevel(cfg.Level).
		WithStdout(cfg.StdoutEnabled()).
		WithConsole(consolehandler.ConsoleConfig{Writer: os.Stdout}).
		WithFileHandler(fh).
		Build(), nil
}

// SetLevel sets the minimum level for subsequent calls
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Level returns the current minimum level
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// Enabled reports whether a call at level would be logged
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, args ...any) {
	// Level check before any allocation
	if level < l.Level() {
		return
	}
	l.log(level, msg, args)
}

// log renders the entry once and hands the line to the handlers. Handler
// errors are not surfaced; the file handler reports its own failures.
func (l *Logger) log(level core.Level, msg string, args []any) {
	entry := core.GetEntry()
	if l.now != nil {
		entry.Time = l.now()
	}
	entry.Level = level
	entry.Message = msg
	entry.Args = append(entry.Args, args...)

	var line string
	if l.appender != nil {
		buf := linePool.Get()
		l.appender.AppendEntry(buf, entry)
		line = buf.String()
		linePool.Put(buf)
	} else {
		line = l.formatter.Format(entry)
	}
	core.PutEntry(entry)

	_ = l.handler.Handle(level, line)
}

var linePool bytebufferpool.Pool

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, msg, args)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, msg, args)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	if core.WarnLevel < l.Level() {
		return
	}
	l.log(core.WarnLevel, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, msg, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...any) {
	if core.WarnLevel < l.Level() {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Emit logs text at level. It makes Logger usable as a console.Sink.
func (l *Logger) Emit(level core.Level, text string) {
	l.Log(level, text)
}

// ClearLogs deletes the log file. Failures other than a missing file are
// reported to standard error and swallowed.
func (l *Logger) ClearLogs() {
	if l.file != nil {
		l.file.ClearLogs()
	}
}

// GetLogs returns the content of the log file, or "" when it is missing
// or cannot be read. Lines still queued are not included; call Flush
// first to read everything logged so far.
func (l *Logger) GetLogs() string {
	if l.file == nil {
		return ""
	}
	return l.file.Logs()
}

// LogFilePath returns the path of the log file ("" without a file handler)
func (l *Logger) LogFilePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Path()
}

// Flush waits until every queued line has been persisted or dropped
func (l *Logger) Flush(ctx context.Context) error {
	if l.file == nil {
		return nil
	}
	return l.file.Flush(ctx)
}

// Stats returns the counters of every handler that keeps them (the file
// handler and any added handler implementing handler.StatsProvider),
// summed.
func (l *Logger) Stats() handler.Snapshot {
	var total handler.Snapshot
	for _, sp := range l.counters {
		total = total.Add(sp.Stats())
	}
	return total
}

// Close flushes pending lines within ctx and closes the handlers. Calls
// made after Close still reach standard output but are not persisted.
func (l *Logger) Close(ctx context.Context) error {
	return multierr.Append(l.Flush(ctx), l.handler.Close())
}
