package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("record not found")

	appErr := NewNotFoundError(cause, "session not found")
	if appErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, http.StatusNotFound)
	}

	if appErr.Error() != "session not found: record not found" {
		t.Errorf("Error() = %q", appErr.Error())
	}

	noCause := NewBadRequestError(nil, "intensity out of range")
	if noCause.Error() != "intensity out of range" {
		t.Errorf("Error() = %q", noCause.Error())
	}
}

func TestGetAppErrorUnwrapsChain(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := fmt.Errorf("persisting session: %w", NewInternalError(cause, "database write failed"))

	appErr, ok := GetAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}

	if appErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, http.StatusInternalServerError)
	}

	if !errors.Is(wrapped, cause) {
		t.Error("expected cause to survive unwrapping")
	}
}

func TestGetAppErrorPlainError(t *testing.T) {
	if _, ok := GetAppError(errors.New("plain")); ok {
		t.Error("plain error should not yield an AppError")
	}

	if _, ok := GetAppError(nil); ok {
		t.Error("nil error should not yield an AppError")
	}
}
