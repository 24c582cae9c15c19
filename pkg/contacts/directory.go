package contacts

import (
	"fmt"
	"iter"
	"time"

	"github.com/entrhq/assistant/pkg/errs"
	"github.com/entrhq/assistant/pkg/field"
	"github.com/entrhq/assistant/pkg/store"
)

// Directory is the contact store.
type Directory struct {
	store *store.Store[*Contact]
	now   func() time.Time
}

// Match is a search hit: the contact's name and phones.
type Match struct {
	Name   string
	Phones []string
}

// Upcoming is a contact whose birthday falls within the queried window.
type Upcoming struct {
	Name     string
	Birthday field.Birthday
	Days     int
}

// Option configures a Directory.
type Option func(*directoryOptions)

type directoryOptions struct {
	now       func() time.Time
	storeOpts []store.Option
}

// WithClock sets the source of "today" for birthday queries.
func WithClock(now func() time.Time) Option {
	return func(o *directoryOptions) {
		o.now = now
	}
}

// WithLogger passes logger to the underlying store.
func WithLogger(logger store.Logger) Option {
	return func(o *directoryOptions) {
		o.storeOpts = append(o.storeOpts, store.WithLogger(logger))
	}
}

// Open loads the directory from p.
func Open(p store.Persister[*Contact], opts ...Option) (*Directory, error) {
	o := directoryOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := store.New[*Contact]("contact", p, o.storeOpts...)
	if err != nil {
		return nil, err
	}
	return &Directory{store: s, now: o.now}, nil
}

// Add stores c. A contact needs at least one phone.
func (d *Directory) Add(c *Contact) error {
	if len(c.phones) == 0 {
		return errs.Invalid("contact", c.Key(), "needs at least one phone")
	}
	return d.store.Add(c)
}

// AddContact builds a contact from its name, first phone and optional birthday
// and stores it.
func (d *Directory) AddContact(name, phone, birthday string) (*Contact, error) {
	c, err := NewContact(name)
	if err != nil {
		return nil, err
	}
	if err := c.AddPhone(phone); err != nil {
		return nil, err
	}
	if birthday != "" {
		if err := c.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}
	if err := d.Add(c); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Delete removes the contact called name.
func (d *Directory) Delete(name string) error {
	return d.store.Delete(name)
}

// Find returns a copy of the contact called name.
func (d *Directory) Find(name string) (*Contact, bool) {
	return d.store.Find(name)
}

// Update replaces the stored contact with c's name.
func (d *Directory) Update(c *Contact) error {
	return d.store.Update(c)
}

// AddPhone appends phone to the contact called name.
func (d *Directory) AddPhone(name, phone string) (*Contact, error) {
	return d.store.Edit(name, func(c *Contact) error {
		return c.AddPhone(phone)
	})
}

// EditPhone replaces oldPhone with newPhone on the contact called name.
func (d *Directory) EditPhone(name, oldPhone, newPhone string) (*Contact, error) {
	return d.store.Edit(name, func(c *Contact) error {
		return c.EditPhone(oldPhone, newPhone)
	})
}

// RemovePhone drops phone from the contact called name. The last phone
// cannot be removed.
func (d *Directory) RemovePhone(name, phone string) (*Contact, error) {
	return d.store.Edit(name, func(c *Contact) error {
		if err := c.RemovePhone(phone); err != nil {
			return err
		}
		if len(c.phones) == 0 {
			return errs.Invalid("contact", name, "needs at least one phone")
		}
		return nil
	})
}

// SetBirthday replaces the birthday of the contact called name.
func (d *Directory) SetBirthday(name, date string) (*Contact, error) {
	return d.store.Edit(name, func(c *Contact) error {
		return c.SetBirthday(date)
	})
}

// SetEmail replaces the email of the contact called name.
func (d *Directory) SetEmail(name, email string) (*Contact, error) {
	return d.store.Edit(name, func(c *Contact) error {
		return c.SetEmail(email)
	})
}

// SetAddress replaces the address of the contact called name.
func (d *Directory) SetAddress(name string, components []string) (*Contact, error) {
	return d.store.Edit(name, func(c *Contact) error {
		return c.SetAddress(components)
	})
}

// DaysToBirthday returns the days until the next birthday of the contact called name.
func (d *Directory) DaysToBirthday(name string) (int, error) {
	c, ok := d.store.Find(name)
	if !ok {
		return 0, fmt.Errorf("contact %q: %w", name, errs.ErrNotFound)
	}
	return c.DaysToBirthday(d.now())
}

// Search returns the contacts whose name or any phone contains query,
// ignoring case, in store order.
func (d *Directory) Search(query string) ([]Match, error) {
	found, err := d.store.Search(query)
	if err != nil {
		return nil, err
	}
	matches := make([]Match, len(found))
	for i, c := range found {
		matches[i] = Match{Name: c.Key(), Phones: c.PhoneStrings()}
	}
	return matches, nil
}

// UpcomingBirthdays lists, in store order, the contacts whose next birthday
// is at most days away. Today's birthdays count as zero days.
func (d *Directory) UpcomingBirthdays(days int) ([]Upcoming, error) {
	if days < 0 {
		return nil, errs.Invalid("days", fmt.Sprint(days), "cannot be negative")
	}

	today := d.now()
	upcoming := []Upcoming{}
	for _, c := range d.store.All() {
		if c.birthday.IsZero() {
			continue
		}
		n := c.birthday.DaysUntil(today)
		if n >= 0 && n <= days {
			upcoming = append(upcoming, Upcoming{Name: c.Key(), Birthday: c.birthday, Days: n})
		}
	}
	return upcoming, nil
}

// Pages yields the contacts pageSize at a time; see store.Store.Pages.
func (d *Directory) Pages(pageSize int) iter.Seq[[]*Contact] {
	return d.store.Pages(pageSize)
}

// Len returns the number of contacts.
func (d *Directory) Len() int { return d.store.Len() }

// Names returns the contact names in store order.
func (d *Directory) Names() []string { return d.store.Keys() }

// Divergent reports whether the last flush failed.
func (d *Directory) Divergent() bool { return d.store.Divergent() }

// Flush writes the directory out again.
func (d *Directory) Flush() error { return d.store.Flush() }

// Target describes where the directory is persisted.
func (d *Directory) Target() string { return d.store.Target() }
