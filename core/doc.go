// Package core defines the shared types used across lcl2log.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log call before it is rendered into a line.
//
// Entry objects are pooled via sync.Pool. The logger takes an Entry with
// GetEntry only after the level check passes, renders it, and returns it
// with PutEntry; the rendered line is what travels to the handlers, so no
// Entry outlives the call that created it.
package core
