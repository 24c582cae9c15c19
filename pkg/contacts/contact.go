// Package contacts implements the contact directory: the Contact record and
// the Directory store built on the generic record store.
package contacts

import (
	"fmt"
	"slices"
	"time"

	"github.com/entrhq/assistant/pkg/errs"
	"github.com/entrhq/assistant/pkg/field"
)

// Contact is one directory entry. Its name is the store key and never changes.
type Contact struct {
	name     field.Name
	phones   []field.Phone
	birthday field.Birthday
	email    field.Email
	address  field.Address
}

// NewContact creates a contact with no attributes.
func NewContact(name string) (*Contact, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Contact{name: n}, nil
}

// Key returns the contact name.
func (c *Contact) Key() string { return c.name.String() }

// SearchText returns the name followed by every phone.
func (c *Contact) SearchText() []string {
	out := make([]string, 0, len(c.phones)+1)
	out = append(out, c.name.String())
	for _, p := range c.phones {
		out = append(out, p.String())
	}
	return out
}

// Clone returns a deep copy.
func (c *Contact) Clone() *Contact {
	cp := *c
	cp.phones = slices.Clone(c.phones)
	return &cp
}

func (c *Contact) Name() field.Name         { return c.name }
func (c *Contact) Birthday() field.Birthday { return c.birthday }
func (c *Contact) Email() field.Email       { return c.email }
func (c *Contact) Address() field.Address   { return c.address }

// Phones returns the phones in the order they were added.
func (c *Contact) Phones() []field.Phone { return slices.Clone(c.phones) }

// PhoneStrings returns the phones as plain strings.
func (c *Contact) PhoneStrings() []string {
	out := make([]string, len(c.phones))
	for i, p := range c.phones {
		out[i] = p.String()
	}
	return out
}

// HasPhone reports whether the contact already lists phone.
func (c *Contact) HasPhone(phone string) bool {
	return c.phoneIndex(phone) >= 0
}

func (c *Contact) phoneIndex(phone string) int {
	p, err := field.NewPhone(phone)
	if err != nil {
		return -1
	}
	return slices.Index(c.phones, p)
}

// AddPhone appends phone. A phone the contact already has is a duplicate.
func (c *Contact) AddPhone(phone string) error {
	p, err := field.NewPhone(phone)
	if err != nil {
		return err
	}
	if slices.Contains(c.phones, p) {
		return fmt.Errorf("phone %s for %q: %w", p, c.name, errs.ErrDuplicateField)
	}
	c.phones = append(c.phones, p)
	return nil
}

// EditPhone replaces oldPhone with newPhone, keeping its position.
func (c *Contact) EditPhone(oldPhone, newPhone string) error {
	i := c.phoneIndex(oldPhone)
	if i < 0 {
		return fmt.Errorf("phone %s for %q: %w", oldPhone, c.name, errs.ErrNotFound)
	}
	p, err := field.NewPhone(newPhone)
	if err != nil {
		return err
	}
	if j := slices.Index(c.phones, p); j >= 0 && j != i {
		return fmt.Errorf("phone %s for %q: %w", p, c.name, errs.ErrDuplicateField)
	}
	c.phones[i] = p
	return nil
}

// RemovePhone drops phone from the contact.
func (c *Contact) RemovePhone(phone string) error {
	i := c.phoneIndex(phone)
	if i < 0 {
		return fmt.Errorf("phone %s for %q: %w", phone, c.name, errs.ErrNotFound)
	}
	c.phones = slices.Delete(c.phones, i, i+1)
	return nil
}

// SetBirthday replaces the birthday.
func (c *Contact) SetBirthday(date string) error {
	b, err := field.NewBirthday(date)
	if err != nil {
		return err
	}
	c.birthday = b
	return nil
}

// SetEmail replaces the email.
func (c *Contact) SetEmail(email string) error {
	e, err := field.NewEmail(email)
	if err != nil {
		return err
	}
	c.email = e
	return nil
}

// SetAddress replaces the address. Blank components are dropped.
func (c *Contact) SetAddress(components []string) error {
	a, err := field.NewAddress(components)
	if err != nil {
		return err
	}
	c.address = a
	return nil
}

// DaysToBirthday returns the whole days from today to the next birthday.
func (c *Contact) DaysToBirthday(today time.Time) (int, error) {
	if c.birthday.IsZero() {
		return 0, fmt.Errorf("contact %q: %w", c.name, errs.ErrNoBirthday)
	}
	return c.birthday.DaysUntil(today), nil
}
