package field

import (
	"slices"
	"strings"

	"github.com/entrhq/assistant/pkg/errs"
)

// Address is an ordered list of address components such as country, city and street.
type Address struct{ parts []string }

// NewAddress keeps the non-blank components, trimmed. At least one has to remain.
func NewAddress(components []string) (Address, error) {
	parts := make([]string, 0, len(components))
	for _, c := range components {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return Address{}, errs.Invalid("address", strings.Join(components, ", "), "needs at least one non-empty component")
	}
	return Address{parts: parts}, nil
}

// Components returns a copy of the address components.
func (a Address) Components() []string { return slices.Clone(a.parts) }

func (a Address) String() string { return strings.Join(a.parts, ", ") }

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool { return len(a.parts) == 0 }
