package roster

import (
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
)

// DeriveStatus combines presence, leave and the shift window into one status
// for (employee, day). Precedence: an actual check-in always wins, so an
// employee on approved leave who nonetheless shows up is Present, not
// On Leave. The function is total; it never fails.
func DeriveStatus(present, onLeave bool, shiftName string, day, now time.Time, loc *time.Location) roster.Status {
	if present {
		return roster.StatusPresent
	}
	if onLeave {
		return roster.StatusOnLeave
	}

	today := dateOnly(now.In(loc))
	d := dateIn(day, loc)

	switch {
	case d.Before(today):
		return roster.StatusAbsent
	case d.After(today):
		return roster.StatusNotStarted
	}

	start, end := ResolveShiftWindow(shiftName, day, loc)
	nowLocal := now.In(loc)

	switch {
	case nowLocal.Before(start):
		return roster.StatusNotStarted
	case !nowLocal.After(end):
		return roster.StatusYetToCheckIn
	default:
		return roster.StatusAbsent
	}
}
