// Package notes implements the notebook: free-form notes keyed by title,
// with tags, stored in the generic record store.
package notes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/entrhq/assistant/pkg/errs"
	"github.com/entrhq/assistant/pkg/field"
)

// MaxTags is the maximum number of tags allowed per note.
const MaxTags = 5

// Note is a titled piece of text with optional tags.
type Note struct {
	title   field.Title
	content field.Content
	tags    []field.Tag
}

// NewNote creates a note. Tags are optional; duplicates collapse.
func NewNote(title, content string, tags []string) (*Note, error) {
	t, err := field.NewTitle(title)
	if err != nil {
		return nil, err
	}
	c, err := field.NewContent(content)
	if err != nil {
		return nil, err
	}

	n := &Note{title: t, content: c}
	if err := n.AddTags(tags); err != nil {
		return nil, err
	}
	return n, nil
}

// Key returns the title.
func (n *Note) Key() string { return n.title.String() }

// SearchText returns the title, the content and every tag.
func (n *Note) SearchText() []string {
	return append([]string{n.title.String(), n.content.String()}, n.Tags()...)
}

// Clone returns a deep copy.
func (n *Note) Clone() *Note {
	cp := *n
	cp.tags = slices.Clone(n.tags)
	return &cp
}

func (n *Note) Title() field.Title     { return n.title }
func (n *Note) Content() field.Content { return n.content }

// Tags returns the normalized tags in the order they were added.
func (n *Note) Tags() []string {
	out := make([]string, len(n.tags))
	for i, t := range n.tags {
		out[i] = t.String()
	}
	return out
}

// ValidateTags parses every tag in tags.
func ValidateTags(tags []string) ([]field.Tag, error) {
	out := make([]field.Tag, 0, len(tags))
	for i, raw := range tags {
		t, err := field.NewTag(raw)
		if err != nil {
			return nil, fmt.Errorf("tag at position %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// AddTags merges tags into the note, keeping the existing order and
// ignoring tags it already has.
func (n *Note) AddTags(tags []string) error {
	parsed, err := ValidateTags(tags)
	if err != nil {
		return err
	}

	merged := slices.Clone(n.tags)
	for _, t := range parsed {
		if !slices.Contains(merged, t) {
			merged = append(merged, t)
		}
	}
	if len(merged) > MaxTags {
		return errs.Invalid("tags", strings.Join(tags, " "),
			fmt.Sprintf("a note holds at most %d tags (would have %d)", MaxTags, len(merged)))
	}
	n.tags = merged
	return nil
}

// SetContent replaces the note body.
func (n *Note) SetContent(content string) error {
	c, err := field.NewContent(content)
	if err != nil {
		return err
	}
	n.content = c
	return nil
}

// retitled returns a copy of the note under a new title.
func (n *Note) retitled(title string) (*Note, error) {
	t, err := field.NewTitle(title)
	if err != nil {
		return nil, err
	}
	cp := n.Clone()
	cp.title = t
	return cp, nil
}

// HasTag checks if the note has a specific tag (case-insensitive)
func (n *Note) HasTag(tag string) bool {
	t, err := field.NewTag(tag)
	if err != nil {
		return false
	}
	return slices.Contains(n.tags, t)
}

// MatchesAllTags checks if the note has all specified tags (case-insensitive, AND logic)
func (n *Note) MatchesAllTags(tags []string) bool {
	for _, tag := range tags {
		if !n.HasTag(tag) {
			return false
		}
	}
	return true
}
