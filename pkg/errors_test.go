package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	body := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound).ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Message != "Not found" {
		t.Fatalf("unexpected body %+v", body)
	}
}
