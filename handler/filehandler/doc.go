// Package filehandler persists log lines to a single append-only file.
//
// FileHandler keeps a pending queue of formatted lines and at most one
// background drain goroutine. The drain loop swaps out the whole queue,
// appends it to the Store as one newline-joined blob, and repeats until
// the queue is empty. Lines queued while a write is in flight are picked
// up by the next iteration, so no two appends ever overlap and lines are
// written in the order they were queued.
//
// Persistence is best effort: a failed append is reported to the
// configured diag.Reporter and its batch is dropped, never retried.
package filehandler
