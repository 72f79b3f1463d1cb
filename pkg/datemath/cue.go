package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

// cue builds a case-insensitive matcher for whole words or phrases. Go's \b is ASCII only,
// so the boundaries are spelled out to keep Vietnamese phrases matchable.
func cue(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(?:` + alternatives + `)(?:$|[^\p{L}\p{N}])`)
}

var (
	tomorrowCue = cue(`tomorrow|tmrw|tmr|ngày mai|sáng mai|trưa mai|chiều mai|tối mai`)
	todayCue    = cue(`today|tonight|this morning|this afternoon|this evening|hôm nay|sáng nay|trưa nay|chiều nay|tối nay`)
	nextWeekCue = cue(`next week|tuần sau|tuần tới`)

	isoDateExact     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTimeStart = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)
	slashDateExact   = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)

	isoDateEmbedded   = regexp.MustCompile(`(?:^|\D)(\d{4})-(\d{1,2})-(\d{1,2})(?:\D|$)`)
	slashDateEmbedded = regexp.MustCompile(`(?:^|[^\d/])(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?(?:[^\d/]|$)`)

	inDurationExpr  = regexp.MustCompile(`(?i)^in (\d+) (day|days|week|weeks|month|months)$`)
	nextWeekdayExpr = regexp.MustCompile(`(?i)^next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
)

const meridiem = `(am|pm|a\.m\.|p\.m\.|sáng|trưa|chiều|tối|đêm)`

// dayPeriodCue finds a part-of-day word anywhere in the text, as in "chiều mai 3 giờ".
var dayPeriodCue = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(tonight|this afternoon|this evening|sáng|trưa|chiều|tối|đêm)(?:$|[^\p{L}\p{N}])`)

// Hour patterns, tried in order. Group 1 is the hour; the last group is the optional meridiem.
var hourPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:^|[^\d])(\d{1,2})\s*:\s*\d{2}(?:\s*` + meridiem + `)?`),
	regexp.MustCompile(`(?i)(?:^|[^\d])(\d{1,2})\s*` + meridiem + `(?:$|[^\p{L}])`),
	regexp.MustCompile(`(?i)(?:^|[^\d])(\d{1,2})\s*(?:h|giờ|o'?clock)(?:\d{2})?(?:\s+` + meridiem + `)?(?:$|[^\p{L}])`),
}

// extractHour returns the first valid hour-of-day cue found in text.
// An hour without its own meridiem takes the day period mentioned elsewhere in text.
func extractHour(text string) (int, bool) {
	period := dayPeriod(text)
	for _, re := range hourPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			h, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			marker := strings.ToLower(m[len(m)-1])
			if marker == "" {
				marker = period
			}
			h = applyMeridiem(h, marker)
			if h >= 0 && h <= 23 {
				return h, true
			}
		}
	}
	return 0, false
}

// dayPeriod returns the first part-of-day word in text as a meridiem marker.
func dayPeriod(text string) string {
	m := dayPeriodCue.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	switch p := strings.ToLower(m[1]); p {
	case "tonight", "this evening", "this afternoon":
		return "pm"
	default:
		return p
	}
}

func applyMeridiem(hour int, marker string) int {
	switch marker {
	case "pm", "p.m.", "chiều", "tối", "đêm":
		if hour < 12 {
			return hour + 12
		}
	case "am", "a.m.", "sáng":
		if hour == 12 {
			return 0
		}
	case "trưa":
		if hour >= 1 && hour <= 5 {
			return hour + 12
		}
	}
	return hour
}

// disambiguate evaluates a/b first as day/month, then as month/day.
func disambiguate(a, b, year int) (CalendarDate, bool) {
	orders := [...]struct{ day, month int }{{a, b}, {b, a}}
	for _, o := range orders {
		if o.day < 1 || o.day > 31 || o.month < 1 || o.month > 12 {
			continue
		}
		if d, ok := NewDate(year, monthOf(o.month), o.day); ok {
			return d, true
		}
	}
	return CalendarDate{}, false
}

func expandYear(y int) int {
	if y < 100 {
		return 2000 + y
	}
	return y
}
