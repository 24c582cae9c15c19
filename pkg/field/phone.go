package field

import (
	"strings"

	"github.com/entrhq/assistant/pkg/errs"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Phone is a telephone number: an optional leading '+' followed by 10 to 15 digits.
type Phone struct{ value string }

// NewPhone validates s as a phone number.
func NewPhone(s string) (Phone, error) {
	v := strings.TrimSpace(s)
	digits := strings.TrimPrefix(v, "+")
	if digits == "" {
		return Phone{}, errs.Invalid("phone", s, "cannot be empty")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, errs.Invalid("phone", s, "must contain only digits after an optional '+'")
		}
	}
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return Phone{}, errs.Invalid("phone", s, "must have between 10 and 15 digits")
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

// IsZero reports whether the phone is unset.
func (p Phone) IsZero() bool { return p.value == "" }
