package skyphase

import "time"

// FormatClock renders t as a 12 hour wall-clock time, e.g. "5:47 PM".
// The zero time is "Unknown".
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("3:04 PM")
}
