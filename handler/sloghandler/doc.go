// Package sloghandler adapts log/slog to an lcl2log logger, so code
// written against the standard library's structured logging ends up in
// the same console and file pipeline as direct logger calls.
package sloghandler
