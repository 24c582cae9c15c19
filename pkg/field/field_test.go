package field

import (
	"strings"
	"testing"
	"time"

	"github.com/entrhq/assistant/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "international", input: "+1234567890", want: "+1234567890"},
		{name: "local twelve digits", input: "380995057766", want: "380995057766"},
		{name: "surrounding space", input: "  0501234567 ", want: "0501234567"},
		{name: "too short", input: "12345", wantErr: true},
		{name: "too long", input: "1234567890123456", wantErr: true},
		{name: "letters", input: "12345abcde", wantErr: true},
		{name: "plus only", input: "+", wantErr: true},
		{name: "inner plus", input: "12+34567890", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValidation)
				assert.True(t, p.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestNewNameAndTitle(t *testing.T) {
	n, err := NewName("  John_Wick ")
	require.NoError(t, err)
	assert.Equal(t, "John_Wick", n.String())

	_, err = NewName("   ")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewName(strings.Repeat("x", MaxKeyLength+1))
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewTitle("bad\ttitle")
	assert.ErrorIs(t, err, errs.ErrValidation)

	title, err := NewTitle("Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", title.String())
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1992-02-29", want: "1992-02-29"},
		{input: "30-05-1967", want: "1967-05-30"},
		{input: "01.12.2000", want: "2000-12-01"},
		{input: "1990-02-29", wantErr: true},
		{input: "2023-13-01", wantErr: true},
		{input: "yesterday", wantErr: true},
		{input: "", wantErr: true},
		{input: "0001-01-01", wantErr: true},
		{input: "01.01.0001", wantErr: true},
		{input: "0001-01-02", want: "0001-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := NewBirthday(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBirthdayDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		today    time.Time
		wantNext time.Time
		wantDays int
	}{
		{
			name:     "today",
			birthday: "1985-06-15",
			today:    date(2025, time.June, 15),
			wantNext: date(2025, time.June, 15),
			wantDays: 0,
		},
		{
			name:     "tomorrow",
			birthday: "1985-06-16",
			today:    date(2025, time.June, 15),
			wantNext: date(2025, time.June, 16),
			wantDays: 1,
		},
		{
			name:     "yesterday wraps to next year",
			birthday: "1985-06-14",
			today:    date(2025, time.June, 15),
			wantNext: date(2026, time.June, 14),
			wantDays: 364,
		},
		{
			name:     "leap day in non-leap year after february",
			birthday: "1992-02-29",
			today:    date(2025, time.March, 1),
			wantNext: date(2026, time.February, 28),
			wantDays: 364,
		},
		{
			name:     "leap day in leap year",
			birthday: "1992-02-29",
			today:    date(2024, time.February, 1),
			wantNext: date(2024, time.February, 29),
			wantDays: 28,
		},
		{
			name:     "leap day normalized on the day",
			birthday: "1992-02-29",
			today:    date(2025, time.February, 28),
			wantNext: date(2025, time.February, 28),
			wantDays: 0,
		},
		{
			name:     "longest gap across a leap day",
			birthday: "1992-02-29",
			today:    date(2023, time.March, 1),
			wantNext: date(2024, time.February, 29),
			wantDays: 365,
		},
		{
			name:     "time of day is ignored",
			birthday: "2000-01-02",
			today:    time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC),
			wantNext: date(2025, time.January, 2),
			wantDays: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.birthday)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, b.NextAnniversary(tt.today))
			assert.Equal(t, tt.wantDays, b.DaysUntil(tt.today))
		})
	}
}

func TestBirthdayDaysUntilRange(t *testing.T) {
	b, err := NewBirthday("1992-02-29")
	require.NoError(t, err)
	other, err := NewBirthday("1970-12-31")
	require.NoError(t, err)

	start := date(2023, time.January, 1)
	for i := 0; i < 4*366; i++ {
		today := start.AddDate(0, 0, i)
		for _, bd := range []Birthday{b, other} {
			days := bd.DaysUntil(today)
			assert.GreaterOrEqual(t, days, 0)
			assert.LessOrEqual(t, days, 365)
			if today.Month() == bd.Time().Month() && today.Day() == bd.Time().Day() {
				assert.Equal(t, 0, days, "today %s", today.Format(DateLayout))
			}
		}
	}
}

func TestNewEmail(t *testing.T) {
	e, err := NewEmail(" bob@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", e.String())

	for _, bad := range []string{"", "bob", "bob@", "Bob <bob@example.com>", "bob@localhost", "a b@example.com"} {
		_, err := NewEmail(bad)
		assert.ErrorIs(t, err, errs.ErrValidation, bad)
	}
}

func TestNewAddress(t *testing.T) {
	a, err := NewAddress([]string{"Ukraine", " ", "Kyiv", "", " Khreshchatyk 1 "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ukraine", "Kyiv", "Khreshchatyk 1"}, a.Components())
	assert.Equal(t, "Ukraine, Kyiv, Khreshchatyk 1", a.String())

	_, err = NewAddress([]string{" ", ""})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewTagAndContent(t *testing.T) {
	tag, err := NewTag(" #Work ")
	require.NoError(t, err)
	assert.Equal(t, "work", tag.String())

	_, err = NewTag("two words")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewTag("#")
	assert.ErrorIs(t, err, errs.ErrValidation)

	c, err := NewContent("  buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", c.String())

	_, err = NewContent(strings.Repeat("a", MaxContentLength+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 800 characters")
}
