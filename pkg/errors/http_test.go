package errors_test

import (
	"errors"
	"net/http"
	"testing"

	pkgErrors "todo-assistant/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewBadRequest("bad input").WithDetails([]string{"title"})

	var httpErr *pkgErrors.HTTPError
	if !errors.As(error(err), &httpErr) {
		t.Fatal("expected *HTTPError")
	}
	if httpErr.StatusCode != http.StatusBadRequest || httpErr.Error() != "bad input" {
		t.Errorf("unexpected error %+v", httpErr)
	}
	if httpErr.Details == nil {
		t.Error("expected details")
	}
	if pkgErrors.ErrNotFound.Details != nil {
		t.Error("WithDetails must not mutate the receiver")
	}
}
