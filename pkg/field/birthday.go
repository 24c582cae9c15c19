package field

import (
	"strings"
	"time"

	"github.com/entrhq/assistant/pkg/errs"
)

// DateLayout is the canonical text form of a Birthday.
const DateLayout = "2006-01-02"

// birthdayLayouts lists the accepted input forms, canonical first.
var birthdayLayouts = []string{DateLayout, "02-01-2006", "02.01.2006"}

// Birthday is a calendar date with no time component.
type Birthday struct{ date time.Time }

// NewBirthday parses s as a calendar date. The date has to exist, so
// 1990-02-29 is rejected.
func NewBirthday(s string) (Birthday, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Birthday{}, errs.Invalid("birthday", s, "cannot be empty")
	}
	for _, layout := range birthdayLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		if t.IsZero() {
			return Birthday{}, errs.Invalid("birthday", s, "must be later than 0001-01-01")
		}
		return BirthdayOf(t), nil
	}
	return Birthday{}, errs.Invalid("birthday", s, "must be a real date in YYYY-MM-DD or DD-MM-YYYY form")
}

// BirthdayOf takes the date part of t.
func BirthdayOf(t time.Time) Birthday {
	return Birthday{date: dateOf(t)}
}

// Time returns the date at midnight UTC.
func (b Birthday) Time() time.Time { return b.date }

func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(DateLayout)
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// Equal reports whether both birthdays are the same date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }

// NextAnniversary returns the first occurrence of the birthday's month and
// day on or after today. A Feb 29 birthday falls on Feb 28 in non-leap years.
func (b Birthday) NextAnniversary(today time.Time) time.Time {
	day := dateOf(today)
	next := anniversary(day.Year(), b.date.Month(), b.date.Day())
	if next.Before(day) {
		next = anniversary(day.Year()+1, b.date.Month(), b.date.Day())
	}
	return next
}

// DaysUntil returns the whole number of days from today to the next anniversary.
func (b Birthday) DaysUntil(today time.Time) int {
	return int(b.NextAnniversary(today).Sub(dateOf(today)).Hours() / 24)
}

func anniversary(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// dateOf drops the time of day, keeping the calendar date as seen in t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
