// Package consolehandler provides the console handler that writes each
// log line to an io.Writer (default: os.Stdout) synchronously, before the
// log call returns. Console output never waits on, or depends on, the
// outcome of file persistence.
package consolehandler
