package workspace

import (
	"log/slog"
	"os"

	"github.com/insectengine/search.quarkus.io/internal/errors"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
)

// CloseableDirectory is an owned directory released exactly once via Close.
// Ephemeral directories are deleted on Close; persistent ones are left alone.
type CloseableDirectory struct {
	path       string
	persistent bool
	closed     bool
}

// NewTemp creates a uniquely named ephemeral directory under baseDir
// (system temp dir when baseDir is empty). Concurrent runs never share a
// working copy.
func NewTemp(baseDir string) (*CloseableDirectory, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	path, err := os.MkdirTemp(baseDir, "quarkusio-")
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "failed to create working directory").
			WithContext("path", baseDir)
	}
	slog.Debug("Created working directory", logfields.Path(path))
	return &CloseableDirectory{path: path}, nil
}

// NewPersistent wraps an existing (or to-be-created) fixed directory that
// persists across runs. Close is a no-op apart from marking the handle closed.
func NewPersistent(path string) (*CloseableDirectory, error) {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "failed to create working directory").
			WithContext("path", path)
	}
	return &CloseableDirectory{path: path, persistent: true}, nil
}

// Path returns the directory location.
func (d *CloseableDirectory) Path() string { return d.path }

// Close releases the directory. Safe to call more than once.
func (d *CloseableDirectory) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.persistent {
		return nil
	}
	if err := os.RemoveAll(d.path); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityError, "failed to remove working directory").
			WithContext("path", d.path)
	}
	slog.Debug("Removed working directory", logfields.Path(d.path))
	return nil
}
