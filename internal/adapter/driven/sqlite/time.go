package sqlite

import (
	"fmt"
	"time"
)

// timeLayout is the layout used for every DATETIME column this package writes.
// Fixed-width fractional seconds keep lexical order equal to time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %q", s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
