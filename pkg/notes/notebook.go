package notes

import (
	"fmt"
	"iter"
	"sort"

	"github.com/gobwas/glob"

	"github.com/entrhq/assistant/pkg/errs"
	"github.com/entrhq/assistant/pkg/store"
)

// Notebook handles CRUD operations and search for notes.
// Every mutation is flushed to the notebook's persister before returning.
type Notebook struct {
	store *store.Store[*Note]
}

// Open loads the notebook from p.
func Open(p store.Persister[*Note], opts ...store.Option) (*Notebook, error) {
	s, err := store.New[*Note]("note", p, opts...)
	if err != nil {
		return nil, err
	}
	return &Notebook{store: s}, nil
}

// AddNote creates a new note with the given title, content and tags
func (b *Notebook) AddNote(title, content string, tags []string) (*Note, error) {
	note, err := NewNote(title, content, tags)
	if err != nil {
		return nil, err
	}
	if err := b.store.Add(note); err != nil {
		return nil, err
	}
	return note.Clone(), nil
}

// Find retrieves a note by title
func (b *Notebook) Find(title string) (*Note, bool) {
	return b.store.Find(title)
}

// DeleteNote removes a note by title
func (b *Notebook) DeleteNote(title string) error {
	return b.store.Delete(title)
}

// AddTags merges tags into an existing note
func (b *Notebook) AddTags(title string, tags []string) (*Note, error) {
	if len(tags) == 0 {
		return nil, errs.Invalid("tags", "", "at least one tag is required")
	}
	return b.store.Edit(title, func(n *Note) error {
		return n.AddTags(tags)
	})
}

// ChangeContent replaces the body of an existing note
func (b *Notebook) ChangeContent(title, content string) (*Note, error) {
	return b.store.Edit(title, func(n *Note) error {
		return n.SetContent(content)
	})
}

// ChangeTitle renames a note. The renamed note moves to the end of the
// notebook, as if it had been deleted and added again.
func (b *Notebook) ChangeTitle(oldTitle, newTitle string) (*Note, error) {
	current, ok := b.store.Find(oldTitle)
	if !ok {
		return nil, fmt.Errorf("note %q: %w", oldTitle, errs.ErrNotFound)
	}
	renamed, err := current.retitled(newTitle)
	if err != nil {
		return nil, err
	}
	if err := b.store.Rekey(oldTitle, renamed); err != nil {
		return nil, err
	}
	return renamed, nil
}

// Search finds notes whose title, content or tags contain query (case-insensitive)
func (b *Notebook) Search(query string) ([]*Note, error) {
	return b.store.Search(query)
}

// FilterByTag returns the notes with at least one tag matching the glob
// pattern, e.g. "work*" or "{home,family}".
func (b *Notebook) FilterByTag(pattern string) ([]*Note, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errs.Invalid("tag pattern", pattern, err.Error())
	}

	result := []*Note{}
	for _, note := range b.store.All() {
		for _, tag := range note.Tags() {
			if g.Match(tag) {
				result = append(result, note)
				break
			}
		}
	}
	return result, nil
}

// ListTags returns all unique tags currently in use across all notes
func (b *Notebook) ListTags() []string {
	tagSet := make(map[string]bool)
	for _, note := range b.store.All() {
		for _, tag := range note.Tags() {
			tagSet[tag] = true
		}
	}

	// Convert to sorted slice
	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// Pages yields the notes pageSize at a time; see store.Store.Pages.
func (b *Notebook) Pages(pageSize int) iter.Seq[[]*Note] {
	return b.store.Pages(pageSize)
}

// Count returns the total number of notes
func (b *Notebook) Count() int {
	return b.store.Len()
}

// Titles returns the note titles in notebook order.
func (b *Notebook) Titles() []string { return b.store.Keys() }

// Divergent reports whether the last flush failed.
func (b *Notebook) Divergent() bool { return b.store.Divergent() }

// Flush writes the notebook out again.
func (b *Notebook) Flush() error { return b.store.Flush() }

// Target describes where the notebook is persisted.
func (b *Notebook) Target() string { return b.store.Target() }
