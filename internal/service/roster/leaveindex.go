package roster

import (
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
)

// LeaveDayIndex maps a calendar day (YYYY-MM-DD) to the set of employee
// emails on approved leave that day.
type LeaveDayIndex map[string]map[string]struct{}

// OnLeave reports whether email is on approved leave on day.
func (idx LeaveDayIndex) OnLeave(email string, day time.Time) bool {
	set, ok := idx[DayKey(day)]
	if !ok {
		return false
	}
	_, ok = set[email]
	return ok
}

// Leave dates arrive in two shapes: new requests are stored as YYYY-MM-DD,
// rows migrated from the old admin sheet as DD-MMM-YYYY.
var leaveDateFormats = []string{"2006-01-02", "02-Jan-2006"}

// ParseLeaveDate parses a leave request date in any accepted format.
func ParseLeaveDate(s string) (time.Time, bool) {
	for _, layout := range leaveDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildLeaveDayIndex expands approved leave requests into per-day sets,
// clamped to [start, end] inclusive. Requests that are not approved, fall
// entirely outside the window, or carry unparseable dates are skipped; the
// skip count is returned so callers can log data-quality problems instead of
// discarding them silently.
func BuildLeaveDayIndex(requests []leave.Request, start, end time.Time) (LeaveDayIndex, int) {
	idx := make(LeaveDayIndex)
	skipped := 0

	start = dateOnly(start)
	end = dateOnly(end)

	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}

		from, fromOK := ParseLeaveDate(req.FromDate)
		to, toOK := ParseLeaveDate(req.ToDate)
		if !fromOK || !toOK {
			skipped++
			continue
		}
		// ParseLeaveDate yields UTC midnights; rebase onto the window's
		// location so the clamp compares days, not instants.
		from = dateIn(from, start.Location())
		to = dateIn(to, start.Location())

		// Intersect [from, to] with [start, end]
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		if from.After(to) {
			continue // entirely outside the window
		}

		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			key := DayKey(d)
			if idx[key] == nil {
				idx[key] = make(map[string]struct{})
			}
			idx[key][req.EmployeeEmail] = struct{}{}
		}
	}

	return idx, skipped
}
