package core

import (
	"sync"
	"time"
)

// Entry represents a single log call before formatting
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Args    []any
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Args: make([]any, 0, 4),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Args = e.Args[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Drop argument references so pooled entries don't pin caller data
	clear(e.Args)
	e.Args = e.Args[:0]
	e.Message = ""
	entryPool.Put(e)
}
