package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a directory entry. Records are managed by the admin UI and are
// read-mostly everywhere else; the email is the stable identifier used by
// attendance, leave and shift data.
type Employee struct {
	ID           string
	Email        string
	FullName     string
	EmployeeCode string
	Designation  *string
	BaseSalary   *decimal.Decimal
	Status       Status
	JoinedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
