package roster

import (
	"time"
)

// dateOnly truncates t to its calendar day, keeping the location.
func dateOnly(t time.Time) time.Time {
	return dateIn(t, t.Location())
}

// dateIn rebuilds t's calendar day at midnight in loc. Day comparisons must
// happen in a single location; comparing midnights from different zones
// shifts the boundary by the zone offset.
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayKey formats a day as the canonical YYYY-MM-DD map key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// sameDay reports whether a and b fall on the same calendar day in loc.
func sameDay(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format("2006-01-02") == b.In(loc).Format("2006-01-02")
}
