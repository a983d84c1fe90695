package repository

import "time"

// Timestamps are stored as RFC 3339 text in UTC so rows sort lexically.
const timeLayout = time.RFC3339Nano

// SQLite has no boolean column type; flags are stored as 0 or 1.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool { return i != 0 }

// formatTime encodes t for storage, stamping the current time when t is zero.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return nowUTC()
	}
	return t.UTC().Format(timeLayout)
}

// parseTime decodes a stored timestamp. A malformed value reads as the zero
// time rather than failing the whole row.
func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}
