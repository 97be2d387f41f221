package roster

import (
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
)

// SummarizeDay reduces one day's roster to aggregate counters. An employee
// still inside their shift window is neither present nor absent yet, which
// is why present+absent+onLeave can undershoot the headcount before the
// office closes.
func SummarizeDay(
	employees []employee.Employee,
	shifts map[string]string,
	presence map[string]struct{},
	leaveIdx LeaveDayIndex,
	lateSet map[string]struct{},
	day, now time.Time,
	loc *time.Location,
) roster.Summary {
	summary := roster.Summary{TotalEmployees: len(employees)}
	nowLocal := now.In(loc)

	for _, emp := range employees {
		if _, ok := presence[emp.Email]; ok {
			summary.Present++
			continue
		}
		if leaveIdx.OnLeave(emp.Email, day) {
			summary.OnLeave++
			continue
		}
		_, end := ResolveShiftWindow(shifts[emp.Email], day, loc)
		if nowLocal.After(end) {
			summary.Absent++
		}
	}

	for _, emp := range employees {
		if _, ok := lateSet[emp.Email]; ok {
			summary.Late++
		}
	}

	return summary
}

// SummarizeRange reduces a multi-day range to coarse counters: present and
// on-leave are counted per distinct employee over the whole range, and
// absent is the floored remainder. A per-day absence count would need the
// shift-window walk SummarizeDay does; over a range that precision is
// deliberately traded away.
func SummarizeRange(
	employees []employee.Employee,
	records []attendance.Record,
	requests []leave.Request,
	start, end time.Time,
) roster.Summary {
	summary := roster.Summary{TotalEmployees: len(employees)}

	known := make(map[string]struct{}, len(employees))
	for _, emp := range employees {
		known[emp.Email] = struct{}{}
	}

	present := make(map[string]struct{})
	for _, rec := range records {
		if _, ok := known[rec.EmployeeEmail]; ok {
			present[rec.EmployeeEmail] = struct{}{}
		}
	}
	summary.Present = len(present)

	start = dateOnly(start)
	end = dateOnly(end)
	onLeave := make(map[string]struct{})
	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}
		if _, ok := known[req.EmployeeEmail]; !ok {
			continue
		}
		from, fromOK := ParseLeaveDate(req.FromDate)
		to, toOK := ParseLeaveDate(req.ToDate)
		if !fromOK || !toOK {
			continue
		}
		if dateIn(from, start.Location()).After(end) || dateIn(to, start.Location()).Before(start) {
			continue
		}
		onLeave[req.EmployeeEmail] = struct{}{}
	}
	summary.OnLeave = len(onLeave)

	summary.Absent = summary.TotalEmployees - summary.Present - summary.OnLeave
	if summary.Absent < 0 {
		summary.Absent = 0
	}

	for _, rec := range records {
		if rec.LateMinutes != nil && *rec.LateMinutes > 0 {
			summary.Late++
		}
	}

	return summary
}
