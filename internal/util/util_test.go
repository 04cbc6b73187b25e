package util

import (
	"testing"
	"time"
)

func TestRandomAlphanumeric(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		got, err := RandomAlphanumeric(12)
		if err != nil {
			t.Fatalf("RandomAlphanumeric(12) error = %v", err)
		}
		if len(got) != 12 {
			t.Fatalf("len = %d, want 12", len(got))
		}
		for _, r := range got {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				t.Fatalf("unexpected rune %q in %s", r, got)
			}
		}
		seen[got] = struct{}{}
	}

	if len(seen) < 100 {
		t.Fatalf("expected 100 distinct values, got %d", len(seen))
	}
}

func TestRandomAlphanumeric_InvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := RandomAlphanumeric(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
