package consolehandler

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lcl2log/core"
)

func TestConsoleHandler_WritesLineWithNewline(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	require.NoError(t, h.Handle(core.InfoLevel, "test message"))

	assert.Equal(t, "test message\n", buf.String())
}

func TestConsoleHandler_DefaultsToStdout(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{})
	assert.Equal(t, os.Stdout, h.writer)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestConsoleHandler_ReturnsWriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{}})
	assert.EqualError(t, h.Handle(core.ErrorLevel, "x"), "stdout closed")
}

func TestConsoleHandler_ConcurrentLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	const goroutines = 8
	const msgs = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				_ = h.Handle(core.InfoLevel, "parallel line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, goroutines*msgs)
	for _, l := range lines {
		assert.Equal(t, "parallel line", l)
	}
}
