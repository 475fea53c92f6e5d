package dateutil

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	input := time.Date(2025, 1, 15, 23, 30, 45, 123456789, loc)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := DateOf(input)

	if !result.Equal(expected) {
		t.Errorf("DateOf(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		weekday  time.Weekday
		expected time.Time
	}{
		{
			name:     "Saturday to Monday",
			start:    time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
			weekday:  time.Monday,
			expected: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Monday to next Monday",
			start:    time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			weekday:  time.Monday,
			expected: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Wednesday to Friday",
			start:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			weekday:  time.Friday,
			expected: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextWeekday(tt.start, tt.weekday)

			if !result.Equal(tt.expected) {
				t.Errorf("NextWeekday(%v, %v) = %v, want %v",
					tt.start.Format("2006-01-02 Mon"), tt.weekday,
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"Saturday shifts to Monday", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
		{"Sunday shifts to Monday", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
		{"Monday stays", time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
		{"Friday stays", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)},
		{"Sunday across year end", time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextBusinessDay(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("NextBusinessDay(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)

	if got := DaysBetween(start, time.Date(2024, 6, 17, 1, 0, 0, 0, time.UTC)); got != 7 {
		t.Errorf("DaysBetween forward = %d, want 7", got)
	}
	if got := DaysBetween(start, start); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
	if got := DaysBetween(start, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)); got != -1 {
		t.Errorf("DaysBetween backward = %d, want -1", got)
	}
}

func TestAnniversaryIn(t *testing.T) {
	leap := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	if got := AnniversaryIn(leap, 2024); !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("AnniversaryIn leap year = %v", got)
	}
	if got := AnniversaryIn(leap, 2025); !got.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("AnniversaryIn non-leap year = %v, want 2025-03-01", got)
	}
}
