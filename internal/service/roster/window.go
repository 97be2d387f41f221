package roster

import (
	"strings"
	"time"
)

// Office shift windows are fixed business policy, expressed in the business
// timezone regardless of where the viewer or server runs.
//
//	morning  06:00-14:00
//	general  10:00-18:00
//	evening  14:05-22:00
//
// Any other name, including an empty one, degrades to the whole day rather
// than failing: an employee without a recognized shift is simply expected
// sometime before midnight.
func ResolveShiftWindow(shiftName string, day time.Time, loc *time.Location) (start, end time.Time) {
	y, m, d := day.Date()

	at := func(hour, minute, second int) time.Time {
		return time.Date(y, m, d, hour, minute, second, 0, loc)
	}

	switch strings.ToLower(strings.TrimSpace(shiftName)) {
	case "morning":
		return at(6, 0, 0), at(14, 0, 0)
	case "general":
		return at(10, 0, 0), at(18, 0, 0)
	case "evening":
		return at(14, 5, 0), at(22, 0, 0)
	default:
		return at(0, 0, 0), at(23, 59, 59)
	}
}
