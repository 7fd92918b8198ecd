// Package console mirrors console-style output into the logger.
//
// Rather than replacing the process's output functions, components that
// print to the console are handed a *Console. Each call prints exactly as
// fmt.Println would and then forwards the same text to a Sink, tagged
// with a marker that tells console-sourced lines apart from direct
// logger calls in the log file.
package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/lcl2log/core"
	"github.com/philipp01105/lcl2log/formatter"
)

// Markers prefixed to console-sourced text.
const (
	MarkerLog   = "CONSOLE"
	MarkerInfo  = "CONSOLE_INFO"
	MarkerWarn  = "CONSOLE_WARN"
	MarkerError = "CONSOLE_ERROR"
)

// Sink receives console output. *logger.Logger implements it.
type Sink interface {
	Emit(level core.Level, text string)
}

// Console prints to its output writers and forwards to a Sink. Log and
// Info print to out; Warn and Error print to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
	sink   Sink
	mu     sync.Mutex
}

// New creates a Console. A nil out means os.Stdout and a nil errOut
// means os.Stderr.
func New(out, errOut io.Writer, sink Sink) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Console{out: out, errOut: errOut, sink: sink}
}

// Log prints args and forwards them at INFO, marked CONSOLE.
func (c *Console) Log(args ...any) {
	c.emit(c.out, core.InfoLevel, MarkerLog, args)
}

// Info prints args and forwards them at INFO, marked CONSOLE_INFO.
func (c *Console) Info(args ...any) {
	c.emit(c.out, core.InfoLevel, MarkerInfo, args)
}

// Warn prints args to errOut and forwards them at WARN, marked CONSOLE_WARN.
func (c *Console) Warn(args ...any) {
	c.emit(c.errOut, core.WarnLevel, MarkerWarn, args)
}

// Error prints args to errOut and forwards them at ERROR, marked CONSOLE_ERROR.
func (c *Console) Error(args ...any) {
	c.emit(c.errOut, core.ErrorLevel, MarkerError, args)
}

func (c *Console) emit(w io.Writer, level core.Level, marker string, args []any) {
	c.mu.Lock()
	_, _ = fmt.Fprintln(w, args...)
	c.mu.Unlock()

	if c.sink != nil {
		c.sink.Emit(level, render(marker, args))
	}
}

// render joins marker and args the way the log file renders arguments,
// so objects keep their JSON form.
func render(marker string, args []any) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(marker)
	for _, arg := range args {
		buf.WriteByte(' ')
		formatter.AppendArg(buf, arg)
	}
	return buf.String()
}

// Writer adapts a Sink to io.Writer, e.g. for log.SetOutput. Bytes are
// copied to out unchanged; every complete line is forwarded at INFO,
// marked CONSOLE. A trailing partial line waits for its newline.
type Writer struct {
	out     io.Writer
	sink    Sink
	mu      sync.Mutex
	pending []byte
}

// NewWriter creates a Writer. A nil out means os.Stderr, the default
// destination of the standard log package.
func NewWriter(out io.Writer, sink Sink) *Writer {
	if out == nil {
		out = os.Stderr
	}
	return &Writer{out: out, sink: sink}
}

// Write copies p to out and forwards each complete line to the sink.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.out.Write(p)

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		line := string(w.pending[:i])
		w.pending = w.pending[i+1:]
		if w.sink != nil {
			w.sink.Emit(core.InfoLevel, MarkerLog+" "+line)
		}
	}
	if len(w.pending) == 0 {
		w.pending = nil
	}
	return n, err
}
