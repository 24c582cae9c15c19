package field

import (
	"net/mail"
	"strings"

	"github.com/entrhq/assistant/pkg/errs"
)

// Email is a bare local@domain address.
type Email struct{ value string }

// NewEmail validates s as an email address. Display names ("Bob <b@x.io>")
// are rejected and the domain needs at least one dot.
func NewEmail(s string) (Email, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Email{}, errs.Invalid("email", s, "cannot be empty")
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Name != "" || addr.Address != v {
		return Email{}, errs.Invalid("email", s, "must look like name@example.com")
	}
	at := strings.LastIndex(v, "@")
	if domain := v[at+1:]; !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return Email{}, errs.Invalid("email", s, "domain must contain a dot")
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether the email is unset.
func (e Email) IsZero() bool { return e.value == "" }
