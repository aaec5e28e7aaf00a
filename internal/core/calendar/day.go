// Package calendar provides a timezone-free calendar day.
//
// A Day carries only year, month and day. It is never converted through a
// zone-aware parser, so comparisons and day arithmetic cannot drift across a
// midnight boundary.
package calendar

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid calendar day (must be YYYY-MM-DD)")

type Day struct {
	year  int
	month time.Month
	day   int
}

// New normalizes out-of-range values the same way time.Date does.
func New(year int, month time.Month, day int) Day {
	return Of(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Of returns the calendar day of t in t's own location.
func Of(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// Today returns the calendar day of now as seen from loc.
func Today(now time.Time, loc *time.Location) Day {
	if loc != nil {
		now = now.In(loc)
	}
	return Of(now)
}

// Parse reads a YYYY-MM-DD string. Longer timestamps are accepted and only
// their date prefix is used.
func Parse(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}

	var fields [3]int
	for i, part := range parts {
		n, ok := digits(part)
		if !ok {
			return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
		}
		fields[i] = n
	}
	year, month, day := fields[0], fields[1], fields[2]

	d := New(year, time.Month(month), day)
	if d.year != year || int(d.month) != month || d.day != day {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// digits parses an unsigned decimal made of ASCII digits only.
func digits(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// MustParse is Parse for literals in tests and fixtures.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Day) Year() int { return d.year }

func (d Day) Month() time.Month { return d.month }

func (d Day) DayOfMonth() int { return d.day }

func (d Day) Weekday() time.Weekday { return d.Midnight().Weekday() }

func (d Day) IsZero() bool {
	return d == Day{}
}

// Midnight is the start of the day in UTC. UTC has no DST, so every day is
// exactly 24 hours long.
func (d Day) Midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Day) AddDays(n int) Day {
	return Of(d.Midnight().AddDate(0, 0, n))
}

// DaysSince returns floor((d - other) / 24h).
func (d Day) DaysSince(other Day) int {
	diff := d.Midnight().Sub(other.Midnight())
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) < 0 {
		days--
	}
	return days
}

func (d Day) Before(other Day) bool { return d.Midnight().Before(other.Midnight()) }

func (d Day) After(other Day) bool { return d.Midnight().After(other.Midnight()) }

func (d Day) Equal(other Day) bool { return d == other }

// Between reports whether d lies in [from, to].
func (d Day) Between(from, to Day) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*d = Day{}
		return nil
	}

	unquoted, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDay, raw)
	}

	parsed, err := Parse(unquoted)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan accepts DATE columns as returned by both pgx and lib/pq.
func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Day{}
		return nil
	case time.Time:
		*d = Of(v)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("calendar: cannot scan %T into Day", src)
	}
}

func (d Day) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
