package console

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lcl2log/core"
)

type emitted struct {
	level core.Level
	text  string
}

type recordingSink struct {
	mu    sync.Mutex
	lines []emitted
}

func (r *recordingSink) Emit(level core.Level, text string) {
	r.mu.Lock()
	r.lines = append(r.lines, emitted{level, text})
	r.mu.Unlock()
}

func TestConsole_Markers(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Console)
		level    core.Level
		text     string
		toErrOut bool
	}{
		{"log", func(c *Console) { c.Log("hello") }, core.InfoLevel, "CONSOLE hello", false},
		{"info", func(c *Console) { c.Info("hello") }, core.InfoLevel, "CONSOLE_INFO hello", false},
		{"warn", func(c *Console) { c.Warn("careful") }, core.WarnLevel, "CONSOLE_WARN careful", true},
		{"error", func(c *Console) { c.Error("boom") }, core.ErrorLevel, "CONSOLE_ERROR boom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			sink := &recordingSink{}
			tt.call(New(&out, &errOut, sink))

			require.Len(t, sink.lines, 1)
			assert.Equal(t, emitted{tt.level, tt.text}, sink.lines[0])
			if tt.toErrOut {
				assert.Empty(t, out.String())
				assert.NotEmpty(t, errOut.String(), "original output must still happen")
			} else {
				assert.NotEmpty(t, out.String(), "original output must still happen")
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestConsole_PreservesOriginalOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := &recordingSink{}
	c := New(&out, &errOut, sink)

	c.Error("boom", 42, map[string]int{"a": 1})

	assert.Equal(t, "boom 42 map[a:1]\n", errOut.String())
	assert.Empty(t, out.String())
	require.Len(t, sink.lines, 1)
	assert.Equal(t, `CONSOLE_ERROR boom 42 {"a":1}`, sink.lines[0].text)
}

func TestConsole_NoArgs(t *testing.T) {
	var out bytes.Buffer
	sink := &recordingSink{}
	New(&out, nil, sink).Log()

	assert.Equal(t, "\n", out.String())
	assert.Equal(t, "CONSOLE", sink.lines[0].text)
}

func TestWriter_ForwardsCompleteLines(t *testing.T) {
	var out bytes.Buffer
	sink := &recordingSink{}
	w := NewWriter(&out, sink)

	n, err := w.Write([]byte("first line\nsecond "))
	require.NoError(t, err)
	assert.Equal(t, 18, n)
	require.Len(t, sink.lines, 1)

	_, err = w.Write([]byte("half\n"))
	require.NoError(t, err)

	assert.Equal(t, "first line\nsecond half\n", out.String())
	assert.Equal(t, []emitted{
		{core.InfoLevel, "CONSOLE first line"},
		{core.InfoLevel, "CONSOLE second half"},
	}, sink.lines)
}

func TestWriter_WithStandardLog(t *testing.T) {
	var out bytes.Buffer
	sink := &recordingSink{}
	std := log.New(NewWriter(&out, sink), "", 0)

	std.Println("from the log package")

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "CONSOLE from the log package", sink.lines[0].text)
	assert.Equal(t, "from the log package\n", out.String())
}

func TestConsole_NilSink(t *testing.T) {
	var out, errOut bytes.Buffer
	c := New(&out, &errOut, nil)

	assert.NotPanics(t, func() {
		c.Info("still printed")
		c.Error("also printed")
	})
	assert.Equal(t, "still printed\n", out.String())
	assert.Equal(t, "also printed\n", errOut.String())
}

func TestWriter_NilSink(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, nil)

	assert.NotPanics(t, func() {
		n, err := w.Write([]byte("no sink\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, n)
	})
	assert.Equal(t, "no sink\n", out.String())
}
