package sessionlog

import (
	"time"

	"focus_timer/internal/timer"
)

// TimestampLayout matches the en-US "Oct 19, 2026, 09:05 AM" rendering.
const TimestampLayout = "Jan 02, 2006, 03:04 PM"

// Record is one completed focus session. Records are never modified once
// created.
type Record struct {
	Duration  string `json:"duration"`
	Timestamp string `json:"timestamp"`
}

// NewRecord builds the record for a session of elapsed seconds stopped at now.
func NewRecord(elapsed int, now time.Time) Record {
	return Record{
		Duration:  timer.Format(elapsed),
		Timestamp: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t in its own location.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
