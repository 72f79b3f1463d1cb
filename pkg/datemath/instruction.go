package datemath

import (
	"strconv"
	"time"
)

// HasRelativeCue reports whether the instruction speaks about "today", "tomorrow"
// or "next week" in any supported language.
func HasRelativeCue(text string) bool {
	return tomorrowCue.MatchString(text) || todayCue.MatchString(text) || nextWeekCue.MatchString(text)
}

// ExtractFromInstruction infers a date and optional hour directly from the user's
// instruction text, independently of the model. Relative cues win over embedded
// dates. A bare hour with no date cue assumes today and is marked not explicit.
func (p *Parser) ExtractFromInstruction(text string, now time.Time) (Fallback, bool) {
	today := p.Today(now)

	var (
		date  CalendarDate
		found bool
	)
	switch {
	case tomorrowCue.MatchString(text):
		date, found = today.AddDays(1), true
	case todayCue.MatchString(text):
		date, found = today, true
	case nextWeekCue.MatchString(text):
		date, found = today.AddDays(7), true
	default:
		date, found = embeddedDate(text, today.Year)
	}

	hour, hasHour := extractHour(text)
	if !found && !hasHour {
		return Fallback{}, false
	}
	if !found {
		return Fallback{Date: today, Hour: hour, HasHour: true, Explicit: false}, true
	}
	return Fallback{Date: date, Hour: hour, HasHour: hasHour, Explicit: true}, true
}

// embeddedDate finds a YYYY-MM-DD or A/B[/Y] date inside free text.
func embeddedDate(text string, defaultYear int) (CalendarDate, bool) {
	if m := isoDateEmbedded.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if date, ok := NewDate(y, monthOf(mo), d); ok {
			return date, true
		}
	}
	for _, m := range slashDateEmbedded.FindAllStringSubmatch(text, -1) {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		year := defaultYear
		if m[3] != "" {
			y, _ := strconv.Atoi(m[3])
			year = expandYear(y)
		}
		if date, ok := disambiguate(a, b, year); ok {
			return date, true
		}
	}
	return CalendarDate{}, false
}
