package filehandler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
)

// FileName is the name of the log file inside the documents directory.
const FileName = "LCL2.txt"

// Store is the append-only destination of log batches.
type Store interface {
	// Append writes p to the end of the log. p must not be retained.
	Append(ctx context.Context, p []byte) error
	// ReadAll returns the whole log.
	ReadAll() ([]byte, error)
	// Remove deletes the log. A missing log yields an fs.ErrNotExist error.
	Remove() error
	// Path identifies the log.
	Path() string
}

// FileStore is a Store backed by one file on disk. The file is opened in
// append mode for every Append and closed again afterwards. Append,
// ReadAll and Remove are serialized so a read or delete never observes
// half of an append.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the documents directory if needed and returns a
// store for dir/LCL2.txt. The file itself is created on first append.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("documents directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create documents directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, FileName)}, nil
}

// Append appends p to the file. ctx is checked before the file is
// opened; an append already under way is not interrupted.
func (s *FileStore) Append(ctx context.Context, p []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	_, err = file.Write(p)
	return err
}

// ReadAll reads the whole file.
func (s *FileStore) ReadAll() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.ReadFile(s.path)
}

// Remove deletes the file.
func (s *FileStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.Remove(s.path)
}

// Path returns the absolute or relative file path the store writes to.
func (s *FileStore) Path() string {
	return s.path
}
