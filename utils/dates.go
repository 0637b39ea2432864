// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from start to end. Both dates are
// normalized to UTC midnights first so a DST transition inside the span
// cannot shift the count.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// NextOccurrence projects a recurring month-day onto the nearest date on or
// after today. Only d's month and day are meaningful; the stored year is
// ignored. Feb 29 clamps to Feb 28 in non-leap years.
func NextOccurrence(d, today time.Time) time.Time {
	today = BeginningOfDay(today)
	o := occurrenceInYear(d, today.Year(), today.Location())
	if o.Before(today) {
		o = occurrenceInYear(d, today.Year()+1, today.Location())
	}
	return o
}

// LastOccurrence is the mirror of NextOccurrence: the nearest date on or
// before today with the same month-day.
func LastOccurrence(d, today time.Time) time.Time {
	today = BeginningOfDay(today)
	o := occurrenceInYear(d, today.Year(), today.Location())
	if o.After(today) {
		o = occurrenceInYear(d, today.Year()-1, today.Location())
	}
	return o
}

// occurrenceInYear places d's month-day in the given year. time.Date would
// silently normalize Feb 29 to Mar 1 in non-leap years, so clamp first.
func occurrenceInYear(d time.Time, year int, loc *time.Location) time.Time {
	month, day := d.Month(), d.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// SameMonthDay reports whether two dates share a month-day, treating a
// stored Feb 29 as Feb 28 when today's year is not a leap year.
func SameMonthDay(d, today time.Time) bool {
	o := occurrenceInYear(d, today.Year(), today.Location())
	return o.Month() == today.Month() && o.Day() == today.Day()
}
