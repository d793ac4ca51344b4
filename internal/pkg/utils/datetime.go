package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the DD.MM.YYYY format used by every date parameter.
	DateLayout = "02.01.2006"
	// ClockLayout is the HH:MM time-of-day format.
	ClockLayout = "15:04"
)

// ParseDate parses a DD.MM.YYYY string as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DateOrToday parses value, falling back to the calendar day of now.
func DateOrToday(value string, now time.Time) time.Time {
	if parsed, ok := ParseDate(value, now.Location()); ok {
		return parsed
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// DayBounds returns the closed interval [00:00:00.000000, 23:59:59.999999]
// of the calendar day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, 999999000, t.Location())
	return start, end
}

// FormatDate renders t as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders t as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatElapsed renders d as HH:MM:SS using whole seconds. Hours are not
// wrapped at 24 and negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseClock parses a strict zero-padded HH:MM value.
func ParseClock(value string) (hour, minute int, ok bool) {
	if len(value) != len(ClockLayout) {
		return 0, 0, false
	}
	parsed, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, 0, false
	}
	return parsed.Hour(), parsed.Minute(), true
}

// WithClock returns day's date with the given hour and minute.
func WithClock(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}
