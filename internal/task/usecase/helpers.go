package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
	"todo-assistant/pkg/gcalendar"
)

const defaultEventDuration = time.Hour

// validate checks the task invariants and fills the all-day end boundary when missing.
func (uc *implUseCase) validate(t *model.Task) error {
	if t.Title == "" {
		return task.ErrEmptyTitle
	}
	if utf8.RuneCountInString(t.Title) > model.MaxTitleLength {
		return task.ErrTitleTooLong
	}
	if !t.Priority.IsValid() {
		return task.ErrInvalidPriority
	}
	if t.DueDate.IsZero() {
		return task.ErrMissingDueDate
	}

	if t.AllDay {
		if t.EndDate == nil {
			end := uc.dateMath.NextMidnight(t.DueDate)
			t.EndDate = &end
			return nil
		}
		if !t.EndDate.After(uc.dateMath.StartOfDay(t.DueDate)) {
			return task.ErrInvalidEnd
		}
		return nil
	}

	if t.EndDate != nil && t.EndDate.Before(t.DueDate) {
		return task.ErrEndBeforeDue
	}
	return nil
}

// occursOn reports whether t overlaps [dayStart, dayEnd). Tasks without an end
// occupy a single instant.
func occursOn(t model.Task, dayStart, dayEnd time.Time) bool {
	end := t.DueDate.Add(time.Nanosecond)
	if t.EndDate != nil {
		end = *t.EndDate
	}
	return t.DueDate.Before(dayEnd) && end.After(dayStart)
}

// tryCreateCalendarEvent mirrors a created task to Google Calendar.
// Failures are logged and never fail the create.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	start := t.DueDate
	end := start.Add(defaultEventDuration)
	if t.AllDay {
		start = uc.dateMath.StartOfDay(t.DueDate)
		end = uc.dateMath.NextMidnight(t.DueDate)
	}
	if t.EndDate != nil {
		end = *t.EndDate
	}

	loc := uc.dateMath.Location()
	tz := loc.String()
	if tz == "Local" {
		tz = ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: strings.TrimSpace(t.Description),
		StartTime:   start.In(loc),
		EndTime:     end.In(loc),
		AllDay:      t.AllDay,
		Timezone:    tz,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return
	}

	uc.l.Infof(ctx, "task.usecase.Create: mirrored task id=%s to calendar event=%s link=%s", t.ID, event.ID, event.HtmlLink)
}
