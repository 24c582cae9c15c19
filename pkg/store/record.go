// Package store implements the generic keyed record store behind the contact
// directory and the notebook. A Store owns the records in insertion order,
// enforces key uniqueness and flushes its full content through a Persister
// after every mutation.
package store

// Record is the contract a value must meet to live in a Store. R is the
// concrete record type, usually a pointer.
type Record[R any] interface {
	// Key returns the primary key. It must not change over the record's life.
	Key() string

	// SearchText returns the strings a substring query is matched against.
	SearchText() []string

	// Clone returns a deep copy.
	Clone() R
}

// Logger is the subset of logging.Logger the store writes to.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
