package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, time.June, 10), date(2024, time.June, 10), 0},
		{"three days ahead", date(2024, time.June, 10), date(2024, time.June, 13), 3},
		{"ignores time of day", time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC), time.Date(2024, time.June, 11, 0, 1, 0, 0, time.UTC), 1},
		{"across month boundary", date(2024, time.June, 28), date(2024, time.July, 2), 4},
		{"backwards is negative", date(2024, time.June, 13), date(2024, time.June, 10), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Fatalf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Spans crossing a DST transition still count whole calendar days: the
// spring-forward day is 23 wall-clock hours but remains one day.
func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}

	// DST began 2024-03-10 and ended 2024-11-03 in this zone.
	springStart := time.Date(2024, time.March, 8, 12, 0, 0, 0, loc)
	springEnd := time.Date(2024, time.March, 11, 12, 0, 0, 0, loc)
	if got := DaysBetween(springStart, springEnd); got != 3 {
		t.Fatalf("across spring forward: DaysBetween() = %d, want 3", got)
	}

	fallStart := time.Date(2024, time.November, 1, 12, 0, 0, 0, loc)
	fallEnd := time.Date(2024, time.November, 4, 12, 0, 0, 0, loc)
	if got := DaysBetween(fallStart, fallEnd); got != 3 {
		t.Fatalf("across fall back: DaysBetween() = %d, want 3", got)
	}
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		stored time.Time
		today  time.Time
		want   time.Time
	}{
		{"later this year", date(1990, time.June, 13), date(2024, time.June, 10), date(2024, time.June, 13)},
		{"today counts", date(1990, time.June, 13), date(2024, time.June, 13), date(2024, time.June, 13)},
		{"already passed, rolls to next year", date(1990, time.June, 13), date(2024, time.June, 14), date(2025, time.June, 13)},
		{"year wraparound", date(1985, time.January, 2), date(2024, time.December, 30), date(2025, time.January, 2)},
		{"feb 29 in leap year", date(2000, time.February, 29), date(2024, time.January, 15), date(2024, time.February, 29)},
		{"feb 29 clamps to feb 28 in non-leap year", date(2000, time.February, 29), date(2025, time.January, 15), date(2025, time.February, 28)},
		{"feb 29 clamps in century non-leap year", date(2000, time.February, 29), date(2100, time.January, 15), date(2100, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.stored, tt.today)
			if !got.Equal(tt.want) {
				t.Fatalf("NextOccurrence(%v, %v) = %v, want %v", tt.stored, tt.today, got, tt.want)
			}
			if got.Before(BeginningOfDay(tt.today)) {
				t.Fatalf("NextOccurrence returned a past date: %v", got)
			}
		})
	}
}

func TestLastOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		stored time.Time
		today  time.Time
		want   time.Time
	}{
		{"earlier this year", date(1990, time.June, 13), date(2024, time.June, 20), date(2024, time.June, 13)},
		{"today counts", date(1990, time.June, 13), date(2024, time.June, 13), date(2024, time.June, 13)},
		{"not yet this year, rolls back", date(1990, time.June, 13), date(2024, time.June, 10), date(2023, time.June, 13)},
		{"feb 29 clamps backwards too", date(2000, time.February, 29), date(2025, time.March, 10), date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastOccurrence(tt.stored, tt.today)
			if !got.Equal(tt.want) {
				t.Fatalf("LastOccurrence(%v, %v) = %v, want %v", tt.stored, tt.today, got, tt.want)
			}
			if got.After(BeginningOfDay(tt.today)) {
				t.Fatalf("LastOccurrence returned a future date: %v", got)
			}
		})
	}
}

// The projector is pure: same inputs, same output.
func TestNextOccurrenceDeterministic(t *testing.T) {
	stored := date(1990, time.June, 13)
	today := date(2024, time.June, 10)
	first := NextOccurrence(stored, today)
	second := NextOccurrence(stored, today)
	if !first.Equal(second) {
		t.Fatalf("NextOccurrence not deterministic: %v vs %v", first, second)
	}
}

// Earliest-qualifying property: no date with the same month-day exists
// between today and the projected occurrence.
func TestNextOccurrenceIsEarliest(t *testing.T) {
	stored := date(1990, time.June, 13)
	for _, today := range []time.Time{
		date(2024, time.January, 1),
		date(2024, time.June, 12),
		date(2024, time.June, 14),
		date(2024, time.December, 31),
	} {
		o := NextOccurrence(stored, today)
		for d := BeginningOfDay(today); d.Before(o); d = d.AddDate(0, 0, 1) {
			if d.Month() == stored.Month() && d.Day() == stored.Day() {
				t.Fatalf("earlier qualifying date %v exists before %v (today %v)", d, o, today)
			}
		}
	}
}

func TestSameMonthDay(t *testing.T) {
	if !SameMonthDay(date(1990, time.June, 13), date(2024, time.June, 13)) {
		t.Fatal("expected June 13 to match June 13")
	}
	if SameMonthDay(date(1990, time.June, 13), date(2024, time.June, 12)) {
		t.Fatal("expected June 13 not to match June 12")
	}
	// A Feb 29 birthday is celebrated on Feb 28 in non-leap years.
	if !SameMonthDay(date(2000, time.February, 29), date(2025, time.February, 28)) {
		t.Fatal("expected Feb 29 to match Feb 28 in a non-leap year")
	}
	if SameMonthDay(date(2000, time.February, 29), date(2024, time.February, 28)) {
		t.Fatal("expected Feb 29 not to match Feb 28 in a leap year")
	}
}
