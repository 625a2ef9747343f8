package logger

import "testing"

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			l, err := New("debug", format, "quoting")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !l.Core().Enabled(-1) {
				t.Fatalf("expected debug level to be enabled")
			}
		})
	}

	t.Run("unknown level falls back to info", func(t *testing.T) {
		l, err := New("verbose", "json", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Core().Enabled(-1) {
			t.Fatalf("debug must be disabled at info level")
		}
	})
}
