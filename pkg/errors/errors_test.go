package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NotFound("Card", nil), http.StatusNotFound},
		{Validation("invalid pack id"), http.StatusBadRequest},
		{Unauthorized("Invalid credentials", nil), http.StatusUnauthorized},
		{Forbidden("Insufficient permissions"), http.StatusForbidden},
		{Conflict("slug already in use"), http.StatusConflict},
		{Internal("boom", nil), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := Status(c.err); got != c.status {
			t.Errorf("Status(%v) = %d, expected %d", c.err, got, c.status)
		}
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := Conflict("User ID already in use")
	if !Is(err, "CONFLICT") {
		t.Error("Expected CONFLICT code to match")
	}
	if Is(err, "NOT_FOUND") {
		t.Error("Did not expect NOT_FOUND code to match")
	}

	wrapped := fmt.Errorf("creating admin: %w", err)
	if !Is(wrapped, "CONFLICT") {
		t.Error("Expected wrapped AppError to match its code")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("no documents")
	err := NotFound("Pack", cause)
	if !stderrors.Is(err, cause) {
		t.Error("Expected the cause to be reachable via errors.Is")
	}
}
