package store

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFile persists records as one YAML document with the same envelope as JSONFile.
type YAMLFile[R any] struct {
	path string
}

// NewYAMLFile creates a YAML persister for path.
func NewYAMLFile[R any](path string) *YAMLFile[R] {
	return &YAMLFile[R]{path: path}
}

// Target returns the file path.
func (f *YAMLFile[R]) Target() string { return f.path }

// Load reads the document. A missing or empty file is an empty store.
func (f *YAMLFile[R]) Load() ([]R, error) {
	b, err := readTarget(f.path)
	if err != nil {
		return nil, loadError(f.path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}

	var doc document[R]
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, loadError(f.path, fmt.Errorf("corrupt document: %w", err))
	}
	if doc.Version != DocumentVersion {
		return nil, loadError(f.path, fmt.Errorf("corrupt document: unsupported version %d", doc.Version))
	}
	return doc.Records, nil
}

// Save writes the document through a temporary file.
func (f *YAMLFile[R]) Save(records []R) error {
	if records == nil {
		records = []R{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document[R]{Version: DocumentVersion, Records: records}); err != nil {
		return saveError(f.path, &encodeError{err: err})
	}
	if err := enc.Close(); err != nil {
		return saveError(f.path, &encodeError{err: err})
	}
	if err := writeAtomic(f.path, buf.Bytes()); err != nil {
		return saveError(f.path, err)
	}
	return nil
}
