package field

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/entrhq/assistant/pkg/errs"
)

const (
	// MaxContentLength is the maximum number of characters in note content.
	MaxContentLength = 800

	// MaxTagLength is the maximum number of characters in a tag.
	MaxTagLength = 32
)

// Tag is a single lower-case word attached to a note.
type Tag struct{ value string }

// NewTag trims and lower-cases s. A leading '#' is dropped.
func NewTag(s string) (Tag, error) {
	v := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if v == "" {
		return Tag{}, errs.Invalid("tag", s, "cannot be empty")
	}
	if strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return Tag{}, errs.Invalid("tag", s, "must be a single word")
	}
	if utf8.RuneCountInString(v) > MaxTagLength {
		return Tag{}, errs.Invalid("tag", s, "must be at most 32 characters")
	}
	return Tag{value: v}, nil
}

func (t Tag) String() string { return t.value }

// Content is the free-text body of a note.
type Content struct{ value string }

// NewContent validates s as note content.
func NewContent(s string) (Content, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Content{}, errs.Invalid("content", "", "cannot be empty")
	}
	if n := utf8.RuneCountInString(v); n > MaxContentLength {
		return Content{}, errs.Invalid("content", "", "exceeds 800 characters; shorten it or split it into several notes")
	}
	return Content{value: v}, nil
}

func (c Content) String() string { return c.value }

// IsZero reports whether the content is unset.
func (c Content) IsZero() bool { return c.value == "" }
