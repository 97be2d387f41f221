package roster

import (
	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
)

// PresenceSet returns the employees considered present for one day: those
// with a finalized record carrying a clock-in, plus those with a raw
// check-in event. The union matters only while the day is still in progress;
// events for an unfinalized day would otherwise read as absences.
func PresenceSet(records []attendance.Record, events []attendance.CheckInEvent) map[string]struct{} {
	present := make(map[string]struct{})

	for _, rec := range records {
		if rec.ClockIn != nil {
			present[rec.EmployeeEmail] = struct{}{}
		}
	}

	for _, ev := range events {
		present[ev.EmployeeEmail] = struct{}{}
	}

	return present
}

// LateSet returns the employees with positive lateness in either source,
// deduplicated so an employee appearing in both is counted once.
func LateSet(records []attendance.Record, events []attendance.CheckInEvent) map[string]struct{} {
	late := make(map[string]struct{})

	for _, rec := range records {
		if rec.LateMinutes != nil && *rec.LateMinutes > 0 {
			late[rec.EmployeeEmail] = struct{}{}
		}
	}

	for _, ev := range events {
		if ev.LateMinutes != nil && *ev.LateMinutes > 0 {
			late[ev.EmployeeEmail] = struct{}{}
		}
	}

	return late
}
