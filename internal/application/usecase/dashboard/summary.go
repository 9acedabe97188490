// Package dashboard contains the use cases that aggregate records into the
// summary figures shown on the dashboard screen.
package dashboard

import "time"

// Period is a closed time window: both Start and End are inclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// PeriodsAt derives the four dashboard windows from a reference instant, in
// the instant's location. Today, month, and year are calendar windows, so a
// record stamped later in the same day, month, or year still counts. The week
// window starts on the most recent Sunday and is capped at the reference
// instant.
func PeriodsAt(now time.Time) (today, week, month, year Period) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)

	today = Period{Start: midnight, End: midnight.AddDate(0, 0, 1).Add(-time.Nanosecond)}
	week = Period{Start: midnight.AddDate(0, 0, -int(midnight.Weekday())), End: now}
	month = Period{Start: monthStart, End: monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	year = Period{Start: yearStart, End: yearStart.AddDate(1, 0, 0).Add(-time.Nanosecond)}
	return today, week, month, year
}
