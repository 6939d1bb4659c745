package rule

import (
	"testing"
	"time"
)

func TestRequiredNonBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"Empty", "", false},
		{"Spaces Only", "   ", false},
		{"Tab And Newline", "\t\n", false},
		{"Single Char", "a", true},
		{"Padded", "  a  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiredNonBlank(tt.value); got != tt.want {
				t.Errorf("RequiredNonBlank(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestOptionalNonBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"Empty Is Fine", "", true},
		{"Spaces Only Fails", "   ", false},
		{"Real Value", "garage nord", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptionalNonBlank(tt.value); got != tt.want {
				t.Errorf("OptionalNonBlank(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNumericAtLeast(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   float64
		want  bool
	}{
		{"Not A Number", "abc", 0, false},
		{"Empty", "", 0, false},
		{"Below Floor", "-1", 0, false},
		{"At Floor", "0", 0, true},
		{"Above Floor One", "1.5", 1, true},
		{"Below Floor One", "0.9", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericAtLeast(tt.value, tt.min); got != tt.want {
				t.Errorf("NumericAtLeast(%q, %v) = %v, want %v", tt.value, tt.min, got, tt.want)
			}
		})
	}
}

func TestDateNotWithinLast(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Three Years Ago", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"Exactly Two Years Ago", time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"One Day Short", time.Date(2022, 6, 16, 0, 0, 0, 0, time.UTC), false},
		{"Last Month", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), false},
		{"Zero Date", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateNotWithinLast(tt.date, 2, now); got != tt.want {
				t.Errorf("DateNotWithinLast(%v, 2) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		// Birthday was yesterday: already 18
		{"Eighteen Since Yesterday", time.Date(2006, 6, 14, 0, 0, 0, 0, time.UTC), 18},
		{"Eighteen Today", time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC), 18},
		// Birthday is tomorrow: still 17 (17 years, 364 days)
		{"Seventeen Until Tomorrow", time.Date(2006, 6, 16, 0, 0, 0, 0, time.UTC), 17},
		{"Leap Day Birth", time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC), 20},
		{"Zero Birth Date", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.birth, now); got != tt.want {
				t.Errorf("AgeAt(%v) = %d, want %d", tt.birth, got, tt.want)
			}
		})
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		// Month overflow clamps to the last day, pinned here on purpose
		{"Jan 31 Plus One", "2024-01-31", 1, "2024-02-29"},
		{"Jan 31 Plus One Non Leap", "2023-01-31", 1, "2023-02-28"},
		{"Mid Month", "2024-03-15", 6, "2024-09-15"},
		{"Year Rollover", "2024-11-30", 3, "2025-02-28"},
		{"Twelve Months", "2024-02-29", 12, "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tt.start)
			if err != nil {
				t.Fatalf("bad start date %q: %v", tt.start, err)
			}
			got := AddMonthsClamped(start, tt.months).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestValidateStructFieldNames(t *testing.T) {
	type form struct {
		Cin   string `json:"cin" rule:"notblank"`
		Notes string `json:"notes" rule:"optblank"`
	}

	errs := ValidateStruct(form{Cin: "   ", Notes: "ok"})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["cin"]; !ok {
		t.Errorf("expected error keyed by json name 'cin', got %v", errs)
	}

	if errs := ValidateStruct(form{Cin: "AB123456"}); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}

	if errs := ValidateStruct(form{Cin: "AB123456", Notes: "  "}); errs == nil {
		t.Error("whitespace-only optional field should fail")
	}
}
