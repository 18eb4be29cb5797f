package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"not found", NotFoundf("row %s missing", "x"), ErrorTypeNotFound},
		{"validation", Validation("bad input"), ErrorTypeValidation},
		{"internal wrap", WrapInternal("query failed", fmt.Errorf("connection reset")), ErrorTypeInternal},
		{"external", External("provider down"), ErrorTypeExternal},
		{"plain error defaults to internal", fmt.Errorf("boom"), ErrorTypeInternal},
		{"wrapped app error", fmt.Errorf("context: %w", Validation("bad input")), ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetType(tt.err); got != tt.want {
				t.Errorf("GetType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_MessageAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := WrapInternal("query failed", cause)

	if got, want := err.Error(), "query failed: connection reset"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() = false, want wrapped cause to surface")
	}

	if got, want := Validation("bad input").Error(), "bad input"; got != want {
		t.Errorf("Error() without cause = %q, want %q", got, want)
	}
}
