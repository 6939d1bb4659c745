package rule

import (
	"strconv"
	"strings"
	"time"
)

// RequiredNonBlank reports whether the value is non-empty after trimming.
func RequiredNonBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// OptionalNonBlank accepts an empty value but rejects whitespace-only input.
func OptionalNonBlank(value string) bool {
	if value == "" {
		return true
	}
	return strings.TrimSpace(value) != ""
}

// NumericAtLeast reports whether value parses as a number not below min.
func NumericAtLeast(value string, min float64) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false
	}
	return n >= min
}

// ParseDate parses a date the way the console sends it, date-only first,
// RFC3339 as fallback.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateNotWithinLast reports whether the date lies more than the given number
// of years in the past. Used for the driver permit issue date.
func DateNotWithinLast(date time.Time, years int, now time.Time) bool {
	if date.IsZero() {
		return false
	}
	cutoff := now.AddDate(-years, 0, 0)
	return !date.After(cutoff)
}
