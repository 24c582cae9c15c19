// Package field holds the validated value types that make up contact and
// note records. Every type is built through a constructor that enforces its
// format rule, so a value that exists is always well formed. The zero value
// of each type means "unset".
package field

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/entrhq/assistant/pkg/errs"
)

// MaxKeyLength is the maximum number of characters in a name or title.
const MaxKeyLength = 64

// validateKey applies the rules shared by record keys.
func validateKey(kind, s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", errs.Invalid(kind, s, "cannot be empty")
	}
	if utf8.RuneCountInString(v) > MaxKeyLength {
		return "", errs.Invalid(kind, s, "must be at most 64 characters")
	}
	if strings.IndexFunc(v, unicode.IsControl) >= 0 {
		return "", errs.Invalid(kind, s, "contains control characters")
	}
	return v, nil
}

// Name is the primary key of a contact.
type Name struct{ value string }

// NewName validates s as a contact name.
func NewName(s string) (Name, error) {
	v, err := validateKey("name", s)
	if err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// IsZero reports whether the name is unset.
func (n Name) IsZero() bool { return n.value == "" }

// Title is the primary key of a note.
type Title struct{ value string }

// NewTitle validates s as a note title.
func NewTitle(s string) (Title, error) {
	v, err := validateKey("title", s)
	if err != nil {
		return Title{}, err
	}
	return Title{value: v}, nil
}

func (t Title) String() string { return t.value }

// IsZero reports whether the title is unset.
func (t Title) IsZero() bool { return t.value == "" }
