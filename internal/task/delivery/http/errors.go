package http

import (
	"errors"
	"net/http"

	"todo-assistant/internal/task"
	pkgErrors "todo-assistant/pkg/errors"
)

var (
	errInvalidDate = pkgErrors.NewBadRequest("invalid date; use RFC3339 or YYYY-MM-DD")
	errMissingID   = pkgErrors.NewBadRequest("id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrTitleTooLong),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrMissingDueDate),
		errors.Is(err, task.ErrEndBeforeDue),
		errors.Is(err, task.ErrInvalidEnd),
		errors.Is(err, task.ErrInvalidFilter):
		return pkgErrors.NewBadRequest(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
