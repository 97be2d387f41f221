package employee

import (
	"github.com/stafflow/stafflow-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	EmployeeCode string  `json:"employee_code"`
	Designation  *string `json:"designation,omitempty"`
	Status       string  `json:"status"`
	ShiftName    *string `json:"shift_name,omitempty"`
}

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	EmployeeCode string  `json:"employee_code"`
	Designation  *string `json:"designation,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
