package shift

import (
	"context"
	"fmt"
	"strings"

	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
)

type ServiceImpl struct {
	shiftRepo    shift.Repository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.Repository, employeeRepo employee.EmployeeRepository) shift.Service {
	return &ServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

// List implements shift.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]shift.AssignmentResponse, error) {
	assignments, err := s.shiftRepo.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	resp := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, shift.AssignmentResponse{
			EmployeeEmail: a.EmployeeEmail,
			ShiftName:     a.ShiftName,
		})
	}

	return resp, nil
}

// Assign implements shift.Service.
func (s *ServiceImpl) Assign(ctx context.Context, req shift.AssignRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return shift.AssignmentResponse{}, err
	}

	assignment := shift.Assignment{
		EmployeeEmail: req.EmployeeEmail,
		ShiftName:     strings.ToLower(req.ShiftName),
	}
	if err := s.shiftRepo.Upsert(ctx, assignment); err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to upsert shift assignment: %w", err)
	}

	return shift.AssignmentResponse{
		EmployeeEmail: assignment.EmployeeEmail,
		ShiftName:     assignment.ShiftName,
	}, nil
}
