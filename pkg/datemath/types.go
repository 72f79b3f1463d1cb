package datemath

import (
	"fmt"
	"time"
)

// CalendarDate is a local calendar day with no time-of-day attached.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the calendar date y-m-d, reporting false when it does not exist
// (e.g. 31 February).
func NewDate(year int, month time.Month, day int) (CalendarDate, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return CalendarDate{}, false
	}
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, false
	}
	return CalendarDate{Year: year, Month: month, Day: day}, true
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// AddDays returns d shifted by n days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// String formats d as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b CalendarDate) int {
	ta := time.Date(a.Year, a.Month, a.Day, 0, 0, 0, 0, time.UTC)
	tb := time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
	return int(tb.Sub(ta).Hours() / 24)
}

// Kind identifies which rule resolved a date expression.
type Kind int

const (
	KindISODate Kind = iota + 1
	KindISODateTime
	KindTomorrow
	KindToday
	KindRelative
	KindSlash
	KindFreeText
)

func (k Kind) String() string {
	switch k {
	case KindISODate:
		return "iso_date"
	case KindISODateTime:
		return "iso_datetime"
	case KindTomorrow:
		return "tomorrow"
	case KindToday:
		return "today"
	case KindRelative:
		return "relative"
	case KindSlash:
		return "slash"
	case KindFreeText:
		return "free_text"
	}
	return "unknown"
}

// Resolution is the outcome of resolving one textual date expression.
// Instant is set only when the text also carried a usable time-of-day.
type Resolution struct {
	Date    CalendarDate
	Kind    Kind
	Instant time.Time
}

// HasInstant reports whether the expression carried a time-of-day.
func (r Resolution) HasInstant() bool {
	return !r.Instant.IsZero()
}

// Fallback is a date, and optionally an hour, inferred from raw instruction text.
type Fallback struct {
	Date    CalendarDate
	Hour    int
	HasHour bool
	// Explicit is false when the date was assumed to be today because only an hour was found.
	Explicit bool
}

// Decision is the outcome of the override policy for one candidate.
type Decision struct {
	Override bool
	Reason   string
}
