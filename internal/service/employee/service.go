package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
)

type ServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.Repository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, shiftRepo shift.Repository) employee.Service {
	return &ServiceImpl{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
	}
}

// List implements employee.Service. Shift assignments are joined in so the
// directory view can show the expected window per employee.
func (s *ServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	assignments, err := s.shiftRepo.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	shifts := make(map[string]string, len(assignments))
	for _, a := range assignments {
		shifts[a.EmployeeEmail] = a.ShiftName
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		r := toEmployeeResponse(emp)
		if name, ok := shifts[emp.Email]; ok {
			r.ShiftName = &name
		}
		resp = append(resp, r)
	}

	return resp, nil
}

// Create implements employee.Service.
func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		EmployeeCode: req.EmployeeCode,
		Designation:  req.Designation,
		Status:       employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		Email:        emp.Email,
		FullName:     emp.FullName,
		EmployeeCode: emp.EmployeeCode,
		Designation:  emp.Designation,
		Status:       string(emp.Status),
	}
}
