package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONFile persists records as one indented JSON document.
type JSONFile[R any] struct {
	path   string
	schema *gojsonschema.Schema
}

// JSONOption configures a JSONFile.
type JSONOption func(*jsonOptions)

type jsonOptions struct {
	schema string
}

// WithSchema makes Load check the document against a JSON Schema before
// decoding it.
func WithSchema(schema string) JSONOption {
	return func(o *jsonOptions) {
		o.schema = schema
	}
}

// NewJSONFile creates a JSON persister for path. It fails only when the
// schema given through WithSchema does not compile.
func NewJSONFile[R any](path string, opts ...JSONOption) (*JSONFile[R], error) {
	var o jsonOptions
	for _, opt := range opts {
		opt(&o)
	}

	f := &JSONFile[R]{path: path}
	if o.schema != "" {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(o.schema))
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", path, err)
		}
		f.schema = schema
	}
	return f, nil
}

// Target returns the file path.
func (f *JSONFile[R]) Target() string { return f.path }

// Load reads the document. A missing or empty file is an empty store.
func (f *JSONFile[R]) Load() ([]R, error) {
	b, err := readTarget(f.path)
	if err != nil {
		return nil, loadError(f.path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}

	if f.schema != nil {
		result, err := f.schema.Validate(gojsonschema.NewBytesLoader(b))
		if err != nil {
			return nil, loadError(f.path, fmt.Errorf("corrupt document: %w", err))
		}
		if !result.Valid() {
			var problems []string
			for _, desc := range result.Errors() {
				problems = append(problems, desc.String())
			}
			return nil, loadError(f.path, fmt.Errorf("document does not match schema: %s", strings.Join(problems, "; ")))
		}
	}

	var doc document[R]
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, loadError(f.path, fmt.Errorf("corrupt document: %w", err))
	}
	if doc.Version != DocumentVersion {
		return nil, loadError(f.path, fmt.Errorf("corrupt document: unsupported version %d", doc.Version))
	}
	return doc.Records, nil
}

// Save writes the document through a temporary file.
func (f *JSONFile[R]) Save(records []R) error {
	if records == nil {
		records = []R{}
	}
	b, err := json.MarshalIndent(document[R]{Version: DocumentVersion, Records: records}, "", "  ")
	if err != nil {
		return saveError(f.path, &encodeError{err: err})
	}
	if err := writeAtomic(f.path, append(b, '\n')); err != nil {
		return saveError(f.path, err)
	}
	return nil
}
