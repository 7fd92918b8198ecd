package formatter

import (
	"github.com/valyala/bytebufferpool"

	"github.com/philipp01105/lcl2log/core"
)

// LineFormatter renders entries as
//
//	[<timestamp>] [<LEVEL>] <message> <arg1> <arg2> ...
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = ISO8601Millis
	}
	return &LineFormatter{Config: cfg}
}

// Format formats an entry as a single line
func (f *LineFormatter) Format(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.AppendEntry(buf, entry)
	return buf.String()
}

// pre-formatted level strings to avoid multiple writes
var levelBrackets = [...]string{
	core.DebugLevel: "] [DEBUG] ",
	core.InfoLevel:  "] [INFO] ",
	core.WarnLevel:  "] [WARN] ",
	core.ErrorLevel: "] [ERROR] ",
}

// AppendEntry writes the formatted entry into buf (implements BufferFormatter)
func (f *LineFormatter) AppendEntry(buf *bytebufferpool.ByteBuffer, entry *core.Entry) {
	ts := entry.Time
	if !f.LocalTime {
		ts = ts.UTC()
	}

	buf.WriteByte('[')
	buf.B = ts.AppendFormat(buf.B, f.TimestampFormat)

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("] [UNKNOWN] ")
	}

	buf.WriteString(entry.Message)

	for _, arg := range entry.Args {
		buf.WriteByte(' ')
		AppendArg(buf, arg)
	}
}
