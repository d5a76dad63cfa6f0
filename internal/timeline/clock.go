package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock converts "HH:MM" text into a fractional hour (hours + minutes/60).
// Single-digit hours ("9:05") are accepted, as the time inputs of most
// platforms emit them that way.
func ParseClock(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "time is required"}
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &ValidationError{Field: field, Value: s, Reason: "expected HH:MM"}
	}

	hours, err := parseClockPart(hh, 2)
	if err != nil || hours > 23 {
		return 0, &ValidationError{Field: field, Value: s, Reason: "hour must be 00-23"}
	}
	minutes, err := parseClockPart(mm, 2)
	if err != nil || len(mm) != 2 || minutes > 59 {
		return 0, &ValidationError{Field: field, Value: s, Reason: "minute must be 00-59"}
	}

	return float64(hours) + float64(minutes)/60, nil
}

// parseClockPart parses up to maxDigits decimal digits. Signs and spaces are
// rejected, which strconv.Atoi alone would let through.
func parseClockPart(s string, maxDigits int) (int, error) {
	if s == "" || len(s) > maxDigits {
		return 0, fmt.Errorf("bad length %d", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}

// FormatClock renders a fractional hour as zero-padded "HH:MM". The hour is
// floored and the minutes rounded; a rounded minute of 60 carries into the hour.
func FormatClock(h float64) string {
	hours := int(math.Floor(h))
	minutes := int(math.Round((h - math.Floor(h)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatRange renders "HH:MM - HH:MM".
func FormatRange(start, end float64) string {
	return FormatClock(start) + " - " + FormatClock(end)
}
