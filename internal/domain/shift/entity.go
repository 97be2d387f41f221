package shift

import "time"

// Assignment maps an employee to a named shift. Window times for the named
// shifts are fixed business policy, resolved at derivation time; an employee
// without an assignment (or with an unrecognized name) falls back to a
// full-day window.
type Assignment struct {
	EmployeeEmail string
	ShiftName     string
	UpdatedAt     time.Time
}
