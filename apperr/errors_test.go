package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected Kind
	}{
		{PermissionDenied("no"), KindPermissionDenied},
		{NotFound("drone %s not found", "d1"), KindNotFound},
		{InvalidState("already released"), KindInvalidState},
		{Conflict("already claimed"), KindConflict},
		{Invalid("bad input"), KindInvalid},
		{errors.New("plain"), KindUnknown},
		{nil, KindUnknown},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.expected {
			t.Errorf("KindOf(%v): expected %d, got %d", tt.err, tt.expected, got)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("claim drone: %w", Conflict("drone is already claimed"))

	if !IsKind(err, KindConflict) {
		t.Error("Expected wrapped error to keep its kind")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(KindUnknown, cause, "failed to write claim")

	if !errors.Is(err, cause) {
		t.Error("Expected wrapped error to unwrap to its cause")
	}
	if err.Error() != "failed to write claim: disk full" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{Invalid("bad"), http.StatusBadRequest},
		{PermissionDenied("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{InvalidState("nope"), http.StatusConflict},
		{Conflict("taken"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.expected {
			t.Errorf("HTTPStatus(%v): expected %d, got %d", tt.err, tt.expected, got)
		}
	}
}
