package booking

import "time"

// DefaultDurationMinutes applies when a service does not declare a duration.
const DefaultDurationMinutes = 60

type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Window derives the end of an engagement from its start and the service
// duration in minutes. Zero or negative durations fall back to
// DefaultDurationMinutes. The end is start plus exactly that many elapsed
// minutes, so windows crossing DST or calendar boundaries stay correct and
// keep the start's zone offset.
func Window(start time.Time, durationMinutes int) TimeWindow {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}

	return TimeWindow{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
