package dateutil

import "time"

func BeginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func NextDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1)
}

// CurrentWeek returns the beginning of the monday of t's week.
func CurrentWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return BeginningOfDay(t).AddDate(0, 0, 1-weekday)
}

func NextWeek(t time.Time) time.Time {
	return CurrentWeek(t).AddDate(0, 0, 7)
}

// SameDay reports whether a and b are in the same calendar day of a's location.
func SameDay(a, b time.Time) bool {
	return BeginningOfDay(a).Equal(BeginningOfDay(b.In(a.Location())))
}

// SameWeek reports whether a and b are in the same monday-based week.
func SameWeek(a, b time.Time) bool {
	return CurrentWeek(a).Equal(CurrentWeek(b.In(a.Location())))
}
