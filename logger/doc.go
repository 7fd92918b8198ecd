// Package logger is the application's logging service.
//
// A Logger is built once at startup and passed to whatever needs to log:
//
//	log := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithFileHandler(fh).
//	    Build()
//
// or, from configuration, with logger.New(cfg).
//
// Every call at or above the level is formatted once, written to standard
// output synchronously and queued for the file handler, which appends
// queued lines to LCL2.txt in batches with at most one write in flight.
// Log calls never block on the file and never return errors; write
// failures are reported to standard error and the failed batch is dropped.
//
// Level checks happen before any allocation, so filtered-out messages
// cost a single atomic load.
package logger
