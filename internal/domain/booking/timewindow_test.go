package booking

import (
	"testing"
	"time"
)

func TestWindow(t *testing.T) {
	t.Run("end is start plus the service duration", func(t *testing.T) {
		start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

		w := Window(start, 90)

		if !w.Start.Equal(start) {
			t.Fatalf("start changed: %v", w.Start)
		}
		if got := w.End.Sub(w.Start); got != 90*time.Minute {
			t.Fatalf("expected 90 elapsed minutes, got %v", got)
		}
	})

	t.Run("zero duration falls back to 60 minutes", func(t *testing.T) {
		start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

		w := Window(start, 0)

		if got := w.Duration(); got != 60*time.Minute {
			t.Fatalf("expected the 60 minute default, got %v", got)
		}
	})

	t.Run("negative duration falls back to 60 minutes", func(t *testing.T) {
		start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

		if got := Window(start, -15).Duration(); got != 60*time.Minute {
			t.Fatalf("expected the 60 minute default, got %v", got)
		}
	})

	t.Run("spring-forward night still spans exact elapsed minutes", func(t *testing.T) {
		// 23:30 local on the night US zones jump forward. The window is
		// elapsed time, not wall-clock arithmetic, and keeps the start offset.
		start, err := time.Parse(time.RFC3339, "2025-03-08T23:30:00-05:00")
		if err != nil {
			t.Fatal(err)
		}

		w := Window(start, 90)

		if got := w.End.Sub(w.Start); got != 90*time.Minute {
			t.Fatalf("expected 90 elapsed minutes, got %v", got)
		}

		_, startOff := w.Start.Zone()
		_, endOff := w.End.Zone()
		if startOff != endOff {
			t.Fatalf("offset drifted: start %d, end %d", startOff, endOff)
		}
	})

	t.Run("window crosses midnight into the next day", func(t *testing.T) {
		start := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)

		w := Window(start, 60)

		want := time.Date(2025, 6, 11, 0, 30, 0, 0, time.UTC)
		if !w.End.Equal(want) {
			t.Fatalf("expected %v, got %v", want, w.End)
		}
	})

	t.Run("window crosses a year boundary", func(t *testing.T) {
		start := time.Date(2025, 12, 31, 23, 45, 0, 0, time.UTC)

		w := Window(start, 30)

		want := time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC)
		if !w.End.Equal(want) {
			t.Fatalf("expected %v, got %v", want, w.End)
		}
	})
}
