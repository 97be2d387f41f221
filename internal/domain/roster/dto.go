package roster

import (
	"github.com/stafflow/stafflow-backend-go/internal/pkg/validator"
)

// Status is the derived attendance status of one employee for one day.
// It is recomputed on every request and never persisted.
type Status string

const (
	StatusPresent      Status = "Present"
	StatusOnLeave      Status = "On Leave"
	StatusAbsent       Status = "Absent"
	StatusNotStarted   Status = "Not Started"
	StatusYetToCheckIn Status = "Yet to Check-in"
)

// Row is one employee's derived roster line for a single day.
type Row struct {
	EmployeeEmail string  `json:"employee_email"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeCode  string  `json:"employee_code"`
	Status        Status  `json:"status"`
	LateMinutes   int     `json:"late_minutes"`
	Working       string  `json:"working"`  // "{h}h {m}m"
	Overtime      string  `json:"overtime"` // "{h}h {m}m"
	ShiftName     *string `json:"shift_name,omitempty"`
}

// AggregateRow is one employee's totals over a multi-day range.
type AggregateRow struct {
	EmployeeEmail string `json:"employee_email"`
	EmployeeName  string `json:"employee_name"`
	EmployeeCode  string `json:"employee_code"`
	DaysPresent   int    `json:"days_present"`
	LateMinutes   int    `json:"late_minutes"`
	Working       string `json:"working"`
	Overtime      string `json:"overtime"`
}

// Summary holds the aggregate counters for the requested range.
type Summary struct {
	TotalEmployees int `json:"total_employees"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	OnLeave        int `json:"on_leave"`
	Late           int `json:"late"`
}

type Response struct {
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	SingleDay  bool           `json:"single_day"`
	Summary    Summary        `json:"summary"`
	Rows       []Row          `json:"rows,omitempty"`
	Aggregates []AggregateRow `json:"aggregates,omitempty"`
}

type Filter struct {
	Date          *string `json:"date,omitempty"`       // YYYY-MM-DD, single-day roster
	StartDate     *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate       *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	EmployeeEmail *string `json:"employee_email,omitempty"`
	Search        *string `json:"search,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	hasDate := f.Date != nil && *f.Date != ""
	hasRange := f.StartDate != nil && *f.StartDate != "" && f.EndDate != nil && *f.EndDate != ""

	if !hasDate && !hasRange {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "either date or start_date and end_date are required",
		})
	}

	if hasDate {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if hasRange {
		start, startOK := validator.IsValidDate(*f.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
		end, endOK := validator.IsValidDate(*f.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
		if startOK && endOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if f.EmployeeEmail != nil && !validator.IsValidEmail(*f.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email is not a valid email",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
