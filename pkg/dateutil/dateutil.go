package dateutil

import "time"

// DateOf returns the calendar date of t as midnight UTC, dropping the clock
// and the location so day arithmetic is never skewed by DST.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns today's local calendar date as midnight UTC
func Today() time.Time {
	return DateOf(time.Now())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// NextWeekday returns the first date strictly after start that falls on weekday
func NextWeekday(start time.Time, weekday time.Weekday) time.Time {
	daysAhead := int(weekday) - int(start.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return start.AddDate(0, 0, daysAhead)
}

// NextBusinessDay moves a Saturday or Sunday forward to the following Monday.
// Monday-Friday dates are returned unchanged.
func NextBusinessDay(date time.Time) time.Time {
	if IsWeekend(date) {
		return NextWeekday(date, time.Monday)
	}
	return date
}

// DaysBetween returns the number of whole calendar days from start to end.
// The result is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours() / 24)
}

// AnniversaryIn returns the month/day of date placed in the given year.
// 29 February falls on 1 March in non-leap years.
func AnniversaryIn(date time.Time, year int) time.Time {
	return time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
