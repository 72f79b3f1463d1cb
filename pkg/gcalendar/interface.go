package gcalendar

import "context"

// ICalendar is the subset of the Calendar API used to mirror tasks.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
