package logger_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipp01105/lcl2log/config"
	"github.com/philipp01105/lcl2log/console"
	"github.com/philipp01105/lcl2log/handler/consolehandler"
	"github.com/philipp01105/lcl2log/handler/filehandler"
	"github.com/philipp01105/lcl2log/logger"
)

// Build a Logger that mirrors to a writer and persists to LCL2.txt.
func ExampleNewBuilder() {
	dir, _ := os.MkdirTemp("", "lcl2")
	defer os.RemoveAll(dir)

	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{Dir: dir})
	if err != nil {
		panic(err)
	}

	log := logger.NewBuilder().
		WithLevel(logger.DebugLevel).
		WithConsole(consolehandler.ConsoleConfig{Writer: io.Discard}).
		WithFileHandler(fh).
		Build()
	defer log.Close(context.Background())

	log.Debug("session booked", map[string]any{"coach": "ana", "slot": 3})
	_ = log.Flush(context.Background())

	fmt.Println(filepath.Base(log.LogFilePath()))
	// Output: LCL2.txt
}

// Build a Logger from configuration.
func ExampleNew() {
	dir, _ := os.MkdirTemp("", "lcl2")
	defer os.RemoveAll(dir)

	stdout := false
	log, err := logger.New(config.Config{
		Level:        logger.WarnLevel,
		DocumentsDir: dir,
		Stdout:       &stdout,
	})
	if err != nil {
		panic(err)
	}
	defer log.Close(context.Background())

	log.Warn("verification pending")
	_ = log.Flush(context.Background())
	log.ClearLogs()
	fmt.Printf("%q\n", log.GetLogs())
	// Output: ""
}

// Route console output through the Logger.
func ExampleLogger_Emit() {
	log := logger.NewBuilder().
		WithConsole(consolehandler.ConsoleConfig{Writer: io.Discard}).
		Build()

	c := console.New(os.Stdout, os.Stdout, log)
	c.Warn("low disk")
	// Output: low disk
}
