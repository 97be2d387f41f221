package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
)

type ServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.EmployeeRepository) leave.Service {
	return &ServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, toRequestResponse(req))
	}

	return resp, nil
}

// Apply implements leave.Service.
func (s *ServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return leave.RequestResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Request{
		ID:            uuid.NewString(),
		EmployeeEmail: req.EmployeeEmail,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toRequestResponse(created), nil
}

// Approve implements leave.Service.
func (s *ServiceImpl) Approve(ctx context.Context, id string) (leave.RequestResponse, error) {
	return s.decide(ctx, id, leave.StatusApproved)
}

// Reject implements leave.Service.
func (s *ServiceImpl) Reject(ctx context.Context, id string) (leave.RequestResponse, error) {
	return s.decide(ctx, id, leave.StatusRejected)
}

func (s *ServiceImpl) decide(ctx context.Context, id string, status leave.Status) (leave.RequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if req.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyProcessed
	}

	decidedBy := deciderFromContext(ctx)
	if err := s.leaveRepo.UpdateStatus(ctx, id, status, decidedBy); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	req.Status = status
	req.DecidedBy = &decidedBy
	now := time.Now()
	req.DecidedAt = &now

	return toRequestResponse(req), nil
}

func deciderFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "system"
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	return "system"
}

func toRequestResponse(req leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:            req.ID,
		EmployeeEmail: req.EmployeeEmail,
		EmployeeName:  req.EmployeeName,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		Reason:        req.Reason,
		Status:        string(req.Status),
		DecidedBy:     req.DecidedBy,
	}
}
