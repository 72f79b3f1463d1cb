package http

import (
	"errors"
	"net/http"

	"todo-assistant/internal/assistant"
	pkgErrors "todo-assistant/pkg/errors"
	"todo-assistant/pkg/gemini"
)

var (
	errInvalidDate  = pkgErrors.NewBadRequest("invalid date; use RFC3339 or YYYY-MM-DD")
	errInvalidIndex = pkgErrors.NewBadRequest("item index must be a non-negative integer")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Model failures keep their message so the caller can act on it.
func (h *handler) mapError(err error) error {
	var apiErr *gemini.APIError
	switch {
	case errors.Is(err, assistant.ErrMissingAPIKey):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests:
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, assistant.ErrModelCall),
		errors.Is(err, assistant.ErrTruncated),
		errors.Is(err, assistant.ErrNotJSONArray):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, assistant.ErrBatchNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, assistant.ErrBatchHasErrors):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, assistant.ErrEmptyInstruction),
		errors.Is(err, assistant.ErrNoItems),
		errors.Is(err, assistant.ErrItemIndex),
		errors.Is(err, assistant.ErrInvalidPriority),
		errors.Is(err, assistant.ErrEmptyEditedTitle):
		return pkgErrors.NewBadRequest(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
