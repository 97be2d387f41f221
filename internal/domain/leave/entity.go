package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is a leave request covering [FromDate, ToDate] inclusive. The dates
// are kept as entered: new requests are stored as YYYY-MM-DD, but rows
// migrated from the old admin sheet use DD-MMM-YYYY (e.g. 02-Jan-2024). Both
// forms are accepted wherever the dates are interpreted.
type Request struct {
	ID            string
	EmployeeEmail string
	FromDate      string
	ToDate        string
	Reason        *string
	Status        Status
	DecidedBy     *string
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	EmployeeName *string
}
