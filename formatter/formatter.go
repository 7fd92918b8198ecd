package formatter

import (
	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/lcl2log/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders a log entry as a single line without a trailing newline
	Format(entry *core.Entry) string
}

// BufferFormatter is an optional interface that formatters can implement
// to append directly into a caller-provided pooled buffer.
type BufferFormatter interface {
	// AppendEntry renders a log entry into buf without a trailing newline
	AppendEntry(buf *bytebufferpool.ByteBuffer, entry *core.Entry)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for ISO-8601 with milliseconds)
	TimestampFormat string
	// LocalTime keeps timestamps in the entry's location instead of UTC
	LocalTime bool
}

// ISO8601Millis is the default timestamp layout, e.g. 2024-03-01T09:30:00.000Z
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// bufferPool is a pool of byte buffers to reduce allocations
var bufferPool bytebufferpool.Pool

func getBuffer() *bytebufferpool.ByteBuffer {
	return bufferPool.Get()
}

func putBuffer(buf *bytebufferpool.ByteBuffer) {
	bufferPool.Put(buf)
}
