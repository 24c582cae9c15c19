package store

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/entrhq/assistant/pkg/errs"
)

// MinQueryLength is the shortest substring Search accepts.
const MinQueryLength = 2

// Store is an ordered, keyed collection of records that writes itself out
// through its Persister after every successful mutation. Keys are unique and
// case-sensitive; iteration follows insertion order.
type Store[R Record[R]] struct {
	kind      string
	persister Persister[R]
	logger    Logger

	mu        sync.RWMutex
	records   map[string]R
	order     []string
	divergent bool
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger Logger
}

// WithLogger sends load and flush diagnostics to logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New loads the persister's content and returns a ready store. kind names a
// single record ("contact", "note") in error messages. A missing target gives
// an empty store; a corrupt one is an error.
func New[R Record[R]](kind string, p Persister[R], opts ...Option) (*Store[R], error) {
	o := options{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[R]{
		kind:      kind,
		persister: p,
		logger:    o.logger,
		records:   make(map[string]R),
	}

	loaded, err := p.Load()
	if err != nil {
		s.logger.Errorf("load %s store from %s: %v", kind, p.Target(), err)
		return nil, err
	}
	for i, r := range loaded {
		if isNil(r) {
			err := loadError(p.Target(), fmt.Errorf("corrupt document: empty %s record at position %d", kind, i))
			s.logger.Errorf("%v", err)
			return nil, err
		}
		key := r.Key()
		if _, dup := s.records[key]; dup {
			err := loadError(p.Target(), fmt.Errorf("corrupt document: duplicate %s %q", kind, key))
			s.logger.Errorf("%v", err)
			return nil, err
		}
		s.records[key] = r
		s.order = append(s.order, key)
	}

	s.logger.Infof("loaded %d %s record(s) from %s", len(s.order), kind, p.Target())
	return s, nil
}

// Add inserts a copy of r. It fails with errs.ErrAlreadyExists when the key is taken.
func (s *Store[R]) Add(r R) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := r.Key()
	if _, exists := s.records[key]; exists {
		return s.alreadyExists(key)
	}

	s.records[key] = r.Clone()
	s.order = append(s.order, key)
	return s.flushLocked("add", key)
}

// Delete removes the record stored under key.
func (s *Store[R]) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[key]; !exists {
		return s.notFound(key)
	}

	s.removeLocked(key)
	return s.flushLocked("delete", key)
}

// Find returns a copy of the record stored under key.
func (s *Store[R]) Find(key string) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.records[key]
	if !exists {
		var zero R
		return zero, false
	}
	return r.Clone(), true
}

// Update replaces the record stored under r's key with a copy of r. It never
// inserts: a missing key fails with errs.ErrNotFound.
func (s *Store[R]) Update(r R) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := r.Key()
	if _, exists := s.records[key]; !exists {
		return s.notFound(key)
	}

	s.records[key] = r.Clone()
	return s.flushLocked("update", key)
}

// Edit applies mutate to a copy of the record stored under key, then stores
// the copy and flushes. If mutate fails nothing changes. The updated record
// is returned even when the flush fails, alongside the flush error.
func (s *Store[R]) Edit(key string, mutate func(R) error) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	current, exists := s.records[key]
	if !exists {
		return zero, s.notFound(key)
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return zero, err
	}
	if next.Key() != key {
		return zero, errs.Invalid(s.kind+" key", next.Key(), "cannot change during an edit")
	}

	s.records[key] = next
	return next.Clone(), s.flushLocked("edit", key)
}

// Rekey replaces the record under oldKey with r, which carries a new key,
// as one flush. The record moves to the end of the order, as a delete
// followed by an add would.
func (s *Store[R]) Rekey(oldKey string, r R) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[oldKey]; !exists {
		return s.notFound(oldKey)
	}
	newKey := r.Key()
	if newKey != oldKey {
		if _, taken := s.records[newKey]; taken {
			return s.alreadyExists(newKey)
		}
	}

	s.removeLocked(oldKey)
	s.records[newKey] = r.Clone()
	s.order = append(s.order, newKey)
	return s.flushLocked("rename", oldKey)
}

// Pages yields the records in store order, pageSize at a time. A pageSize of
// zero or less yields every record in one page; an empty store yields nothing.
// Each iteration works on a fresh snapshot, so the sequence can be ranged
// over again.
func (s *Store[R]) Pages(pageSize int) iter.Seq[[]R] {
	return func(yield func([]R) bool) {
		all := s.All()
		size := pageSize
		if size <= 0 {
			size = len(all)
		}
		for start := 0; start < len(all); start += size {
			end := min(start+size, len(all))
			if !yield(all[start:end]) {
				return
			}
		}
	}
}

// Search returns, in store order, the records whose search text contains
// query, ignoring case. The query must be at least MinQueryLength characters.
func (s *Store[R]) Search(query string) ([]R, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return nil, errs.Invalid("search query", query, fmt.Sprintf("must have at least %d characters", MinQueryLength))
	}

	fold := cases.Fold()
	needle := fold.String(q)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []R{}
	for _, key := range s.order {
		r := s.records[key]
		for _, text := range r.SearchText() {
			if strings.Contains(fold.String(text), needle) {
				matches = append(matches, r.Clone())
				break
			}
		}
	}
	return matches, nil
}

// All returns copies of every record in store order.
func (s *Store[R]) All() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]R, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.records[key].Clone())
	}
	return out
}

// Keys returns the keys in store order.
func (s *Store[R]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order...)
}

// Len returns the number of records.
func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Divergent reports whether the last flush failed, leaving memory ahead of disk.
func (s *Store[R]) Divergent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.divergent
}

// Flush writes the current content out. Useful to resync after a failed flush.
func (s *Store[R]) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flushLocked("flush", "")
}

// Target describes where the store is persisted.
func (s *Store[R]) Target() string {
	return s.persister.Target()
}

func (s *Store[R]) removeLocked(key string) {
	delete(s.records, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// flushLocked saves every record. A failure marks the store divergent and
// is reported against the operation that triggered it.
func (s *Store[R]) flushLocked(op, key string) error {
	snapshot := make([]R, 0, len(s.order))
	for _, k := range s.order {
		snapshot = append(snapshot, s.records[k])
	}

	err := s.persister.Save(snapshot)
	if err == nil {
		if s.divergent {
			s.logger.Infof("%s store back in sync with %s", s.kind, s.persister.Target())
		}
		s.divergent = false
		s.logger.Debugf("flushed %d %s record(s) to %s after %s", len(snapshot), s.kind, s.persister.Target(), op)
		return nil
	}

	s.divergent = true
	cause := err
	var pe *errs.PersistenceError
	if errors.As(err, &pe) {
		cause = pe.Err
	}
	if key != "" {
		op = fmt.Sprintf("%s %s %q", op, s.kind, key)
	}
	s.logger.Errorf("%s: flush to %s failed, memory is ahead of disk: %v", op, s.persister.Target(), cause)
	return &errs.PersistenceError{Op: op, Target: s.persister.Target(), Divergent: true, Err: cause}
}

func (s *Store[R]) notFound(key string) error {
	return fmt.Errorf("%s %q: %w", s.kind, key, errs.ErrNotFound)
}

func (s *Store[R]) alreadyExists(key string) error {
	return fmt.Errorf("%s %q: %w", s.kind, key, errs.ErrAlreadyExists)
}

// isNil reports whether r holds no value, as a decoded "null" entry does.
func isNil[R any](r R) bool {
	v := reflect.ValueOf(any(r))
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
