package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/assistant/pkg/errs"
)

// DocumentVersion is written into every file document.
const DocumentVersion = 1

// Persister loads and saves the whole content of one store.
type Persister[R any] interface {
	// Load returns every record in document order. A missing target yields
	// no records and no error; a corrupt one yields a *errs.PersistenceError.
	Load() ([]R, error)

	// Save replaces the target's content with records, atomically.
	Save(records []R) error

	// Target names the location being written, for messages and logs.
	Target() string
}

// document is the envelope shared by the file persisters.
type document[R any] struct {
	Version int `json:"version" yaml:"version"`
	Records []R `json:"records" yaml:"records"`
}

func loadError(target string, err error) error {
	return &errs.PersistenceError{Op: "load", Target: target, Err: err}
}

func saveError(target string, err error) error {
	return &errs.PersistenceError{Op: "save", Target: target, Err: err}
}

// encodeError marks serialization failures so the retrying persister can
// tell them apart from I/O failures.
type encodeError struct{ err error }

func (e *encodeError) Error() string { return fmt.Sprintf("encode: %v", e.err) }
func (e *encodeError) Unwrap() error { return e.err }

// IsEncodeError reports whether err came from serializing records rather than writing them.
func IsEncodeError(err error) bool {
	var ee *encodeError
	return errors.As(err, &ee)
}

// readTarget returns the file content, or nil when the file does not exist.
func readTarget(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return b, err
}

// writeAtomic writes b to a temporary file next to path and renames it into place.
func writeAtomic(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
