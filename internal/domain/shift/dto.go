package shift

import (
	"strings"

	"github.com/stafflow/stafflow-backend-go/internal/pkg/validator"
)

type AssignRequest struct {
	EmployeeEmail string `json:"-"`
	ShiftName     string `json:"shift_name"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email is required",
		})
	}

	// Unknown names are legal downstream (full-day fallback) but an admin
	// assigning one is almost certainly a typo, so reject it here.
	validShifts := []string{"morning", "general", "evening"}
	if !validator.IsInSlice(strings.ToLower(r.ShiftName), validShifts) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_name",
			Message: "shift_name must be one of: morning, general, evening",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	EmployeeEmail string `json:"employee_email"`
	ShiftName     string `json:"shift_name"`
}
