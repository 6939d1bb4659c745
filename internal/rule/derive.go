package rule

import "time"

// AgeAt computes the age in full calendar years at the given instant.
// Calendar subtraction with a month/day correction, not day counting.
func AgeAt(birth, now time.Time) int {
	if birth.IsZero() {
		return 0
	}

	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// AddMonthsClamped adds the given number of months, clamping the day to the
// last day of the target month. 2024-01-31 + 1 month = 2024-02-29, not the
// March 2 that plain AddDate normalization would give.
func AddMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()

	m := int(month) + months
	y := year + (m-1)/12
	m = (m-1)%12 + 1
	if m <= 0 {
		m += 12
		y--
	}

	if last := daysInMonth(y, time.Month(m)); day > last {
		day = last
	}

	h, min, sec := date.Clock()
	return time.Date(y, time.Month(m), day, h, min, sec, date.Nanosecond(), date.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
