package normalize

import (
	"regexp"
	"strings"
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/pkg/datemath"
)

var (
	dateOnly     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	containsDate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// Normalizer turns model candidates into well-formed tasks. It never panics and never
// returns a Go error: every problem is reported through Result.
type Normalizer struct {
	parser *datemath.Parser
	now    func() time.Time
}

// New creates a Normalizer. A nil clock means time.Now.
func New(parser *datemath.Parser, clock func() time.Time) *Normalizer {
	if clock == nil {
		clock = time.Now
	}
	return &Normalizer{parser: parser, now: clock}
}

// Normalize converts c into a task, recording every default it applies.
func (n *Normalizer) Normalize(c model.Candidate) Result {
	warnings := []string{}

	title := strings.TrimSpace(c.Title)
	if title == "" {
		return Result{Warnings: warnings, Error: ErrMissingTitle}
	}

	// exact match only; any other spelling falls back like a missing priority
	priority := model.Priority(c.Priority)
	if !priority.IsValid() {
		priority = model.PriorityMedium
		warnings = append(warnings, WarnPriorityDefault)
	}

	description := ""
	if c.Description != nil {
		description = *c.Description
	}

	now := n.now()
	s := n.resolveSpan(c, now)
	if s.warning != "" {
		warnings = append(warnings, s.warning)
	}

	end, endWarning := n.checkEnd(s, c.AllDay)
	if endWarning != "" {
		warnings = append(warnings, endWarning)
	}

	return Result{
		Task: &model.Task{
			Title:       title,
			Description: description,
			DueDate:     s.due,
			EndDate:     end,
			AllDay:      c.AllDay,
			Priority:    priority,
			Tags:        cleanTags(c.Tags),
			Completed:   false,
			CreatedAt:   now,
		},
		Warnings: warnings,
	}
}

// resolveSpan picks due and end from the candidate's date fields.
func (n *Normalizer) resolveSpan(c model.Candidate, now time.Time) span {
	due := ""
	if c.DueDate != nil {
		due = strings.TrimSpace(*c.DueDate)
	}
	end := ""
	if c.EndDate != nil {
		end = strings.TrimSpace(*c.EndDate)
	}

	switch {
	case due == "":
		return n.defaultSpan(now, c.AllDay, WarnNoDueDate)
	case dateOnly.MatchString(due):
		return n.dateOnlySpan(due, end, c.AllDay, now)
	case containsDate.MatchString(due):
		return n.instantSpan(due, end, c.AllDay, now)
	default:
		return n.defaultSpan(now, c.AllDay, WarnUnsupportedDueDate)
	}
}

func (n *Normalizer) defaultSpan(now time.Time, allDay bool, warning string) span {
	s := span{due: now, warning: warning}
	if allDay {
		e := n.parser.NextMidnight(now)
		s.end = &e
	}
	return s
}

func (n *Normalizer) dateOnlySpan(due, end string, allDay bool, now time.Time) span {
	res, ok := n.parser.Resolve(due, now)
	if !ok {
		return n.defaultSpan(now, allDay, WarnUnparsableDueDate)
	}

	if !allDay {
		s := span{due: n.parser.ToInstant(res.Date, datemath.DefaultTimedHour)}
		if end != "" && !dateOnly.MatchString(end) {
			if t, err := n.parser.ParseDateTime(end); err == nil {
				s.end = &t
			}
		}
		return s
	}

	s := span{due: n.parser.ToInstant(res.Date, datemath.DefaultAllDayHour)}
	last := res.Date
	if end != "" {
		if dateOnly.MatchString(end) {
			// date-only ends name the last included day
			if r, ok := n.parser.Resolve(end, now); ok {
				last = r.Date
			}
		} else if t, err := n.parser.ParseDateTime(end); err == nil {
			s.end = &t
			return s
		}
	}
	e := n.parser.ToInstant(last.AddDays(1), datemath.DefaultAllDayHour)
	s.end = &e
	return s
}

func (n *Normalizer) instantSpan(due, end string, allDay bool, now time.Time) span {
	t, err := n.parser.ParseDateTime(due)
	if err != nil {
		return n.defaultSpan(now, allDay, WarnUnparsableDueDate)
	}
	s := span{due: t}
	if end != "" {
		if e, err := n.parser.ParseDateTime(end); err == nil {
			s.end = &e
		}
	}
	if s.end == nil && allDay {
		e := n.parser.NextMidnight(t)
		s.end = &e
	}
	return s
}

// checkEnd drops an end that contradicts the due date and, for all-day tasks,
// restores the exclusive next-midnight boundary.
func (n *Normalizer) checkEnd(s span, allDay bool) (*time.Time, string) {
	if s.end == nil {
		return nil, ""
	}
	if allDay {
		if s.end.After(n.parser.StartOfDay(s.due)) {
			return s.end, ""
		}
		e := n.parser.NextMidnight(s.due)
		return &e, WarnEndBeforeDue
	}
	if s.end.Before(s.due) {
		return nil, WarnEndBeforeDue
	}
	return s.end, ""
}

func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
