package store

import (
	"errors"
	"slices"

	"github.com/entrhq/assistant/pkg/errs"
)

// item is a minimal record used to exercise the engine.
type item struct {
	Name   string   `json:"name" yaml:"name"`
	Phones []string `json:"phones,omitempty" yaml:"phones,omitempty"`
}

func (i *item) Key() string { return i.Name }

func (i *item) SearchText() []string {
	return append([]string{i.Name}, i.Phones...)
}

func (i *item) Clone() *item {
	return &item{Name: i.Name, Phones: slices.Clone(i.Phones)}
}

func newItem(name string, phones ...string) *item {
	return &item{Name: name, Phones: phones}
}

// memPersister keeps the last saved snapshot and can be told to fail.
type memPersister struct {
	saved    []*item
	loadErr  error
	saveErrs []error // consumed one per Save call
	saves    int
}

func (m *memPersister) Target() string { return "memory" }

func (m *memPersister) Load() ([]*item, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.saved, nil
}

func (m *memPersister) Save(records []*item) error {
	m.saves++
	if len(m.saveErrs) > 0 {
		err := m.saveErrs[0]
		m.saveErrs = m.saveErrs[1:]
		if err != nil {
			return err
		}
	}
	m.saved = make([]*item, len(records))
	for i, r := range records {
		m.saved[i] = r.Clone()
	}
	return nil
}

var errDiskFull = errors.New("no space left on device")

func ioFailure() error {
	return &errs.PersistenceError{Op: "save", Target: "memory", Err: errDiskFull}
}
