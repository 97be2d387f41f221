package leave

import (
	"github.com/stafflow/stafflow-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeEmail string  `json:"employee_email"`
	FromDate      string  `json:"from_date"` // YYYY-MM-DD
	ToDate        string  `json:"to_date"`   // YYYY-MM-DD
	Reason        *string `json:"reason,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email is required",
		})
	} else if !validator.IsValidEmail(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email is not a valid email",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeEmail string  `json:"employee_email"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	FromDate      string  `json:"from_date"`
	ToDate        string  `json:"to_date"`
	Reason        *string `json:"reason,omitempty"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
}
