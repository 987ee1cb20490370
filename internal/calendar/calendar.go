// Package calendar holds the date-only helpers shared by the services.
// Every date in the system is a calendar day stored as UTC midnight.
package calendar

import "time"

// Date returns the calendar day of t as seen in loc, at UTC midnight.
func Date(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns a clock reporting the current day in loc.
func Today(loc *time.Location) func() time.Time {
	return func() time.Time {
		return Date(time.Now(), loc)
	}
}

// Now returns a clock reporting the current instant in loc.
func Now(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Fixed returns a clock that always reports the given day. Used by tests
// and by anything that must evaluate "today" once per request.
func Fixed(day time.Time) func() time.Time {
	d := Date(day, nil)

	return func() time.Time { return d }
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
