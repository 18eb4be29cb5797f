package handlers

import "testing"

func TestIsAlphanumeric(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{"abc123", true},
		{"ABCxyz789", true},
		{"", true},
		{"abc 123", false},
		{"abc-123", false},
		{"abc.123", false},
		{"abc\n123", false},
		{"abc123;DROP", false},
		{"日本語", true},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			if got := isAlphanumeric(tt.state); got != tt.want {
				t.Errorf("isAlphanumeric(%q) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}
