package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parser resolves date expressions against a fixed location. All "local" semantics
// (midnight, same day, default hours) are evaluated in that location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty string or "Local" selects the host's local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || strings.EqualFold(timezone, "local") {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to loc.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) CalendarDate {
	return DateOf(now.In(p.location))
}

// DateOf returns the calendar date of t in the parser's timezone.
func (p *Parser) DateOf(t time.Time) CalendarDate {
	return DateOf(t.In(p.location))
}

// ToInstant combines a calendar date with an hour-of-day in the parser's timezone.
func (p *Parser) ToInstant(d CalendarDate, hour int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.ToInstant(p.DateOf(t), 0)
}

// NextMidnight returns local midnight of the day after t's day.
func (p *Parser) NextMidnight(t time.Time) time.Time {
	return p.ToInstant(p.DateOf(t).AddDays(1), 0)
}

// Resolve converts a date expression into a calendar date. Rules, in order:
// exact YYYY-MM-DD, ISO datetime, tomorrow, today, other relative phrases,
// A/B/Y (day first, then month first), then generic parsing. It never panics.
func (p *Parser) Resolve(text string, now time.Time) (Resolution, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Resolution{}, false
	}

	if isoDateExact.MatchString(text) {
		if d, ok := p.parseISODate(text); ok {
			return Resolution{Date: d, Kind: KindISODate}, true
		}
		return Resolution{}, false
	}

	if isoDateTimeStart.MatchString(text) {
		d, ok := p.parseISODate(text[:10])
		if !ok {
			return Resolution{}, false
		}
		res := Resolution{Date: d, Kind: KindISODateTime}
		if instant, err := p.ParseDateTime(text); err == nil {
			res.Instant = instant
		}
		return res, true
	}

	today := p.Today(now)
	if tomorrowCue.MatchString(text) {
		return Resolution{Date: today.AddDays(1), Kind: KindTomorrow}, true
	}
	if todayCue.MatchString(text) {
		return Resolution{Date: today, Kind: KindToday}, true
	}
	if d, ok := p.resolveRelative(text, today); ok {
		return Resolution{Date: d, Kind: KindRelative}, true
	}

	if m := slashDateExact.FindStringSubmatch(text); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if d, ok := disambiguate(a, b, expandYear(y)); ok {
			return Resolution{Date: d, Kind: KindSlash}, true
		}
	}

	if t, ok := p.parseFreeText(text); ok {
		return Resolution{Date: p.DateOf(t), Kind: KindFreeText}, true
	}
	return Resolution{}, false
}

// dateTimeLayouts are tried in order; layouts without an offset are read in the parser's zone.
var dateTimeLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05Z0700", true},
	{"2006-01-02T15:04:05.999999999Z0700", true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04Z0700", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05Z07:00", true},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{DateLayout, false},
}

// ParseDateTime parses an ISO-8601 style date-time.
func (p *Parser) ParseDateTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, l := range dateTimeLayouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, text)
		} else {
			t, err = time.ParseInLocation(l.layout, text, p.location)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date-time %q", text)
}

func (p *Parser) parseISODate(text string) (CalendarDate, bool) {
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return CalendarDate{}, false
	}
	return DateOf(t), true
}

// resolveRelative handles "next week", "in N days/weeks/months" and "next <weekday>".
func (p *Parser) resolveRelative(text string, today CalendarDate) (CalendarDate, bool) {
	if nextWeekCue.MatchString(text) {
		return today.AddDays(7), true
	}

	if m := inDurationExpr.FindStringSubmatch(text); m != nil {
		amount, _ := strconv.Atoi(m[1])
		unit := strings.ToLower(m[2])
		switch {
		case strings.HasPrefix(unit, "day"):
			return today.AddDays(amount), true
		case strings.HasPrefix(unit, "week"):
			return today.AddDays(amount * 7), true
		case strings.HasPrefix(unit, "month"):
			t := time.Date(today.Year, today.Month+time.Month(amount), today.Day, 12, 0, 0, 0, time.UTC)
			return DateOf(t), true
		}
	}

	if m := nextWeekdayExpr.FindStringSubmatch(text); m != nil {
		target := weekdays[strings.ToLower(m[1])]
		current := time.Date(today.Year, today.Month, today.Day, 12, 0, 0, 0, time.UTC).Weekday()
		daysUntil := int(target - current)
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return today.AddDays(daysUntil), true
	}

	return CalendarDate{}, false
}

// parseFreeText is the last-resort generic parse.
func (p *Parser) parseFreeText(text string) (t time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()
	parsed, err := dateparse.ParseIn(text, p.location)
	if err != nil || parsed.IsZero() {
		return time.Time{}, false
	}
	return parsed, true
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func monthOf(n int) time.Month {
	return time.Month(n)
}
