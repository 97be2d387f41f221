package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

// ListAll implements leave.Repository.
func (l *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT r.id, r.employee_email, r.from_date, r.to_date, r.reason, r.status,
			r.decided_by, r.decided_at, r.created_at, r.updated_at, e.full_name
		FROM leave_requests r
		LEFT JOIN employees e ON e.email = r.employee_email
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeEmail, &req.FromDate, &req.ToDate, &req.Reason, &req.Status,
			&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetByID implements leave.Repository.
func (l *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT r.id, r.employee_email, r.from_date, r.to_date, r.reason, r.status,
			r.decided_by, r.decided_at, r.created_at, r.updated_at, e.full_name
		FROM leave_requests r
		LEFT JOIN employees e ON e.email = r.employee_email
		WHERE r.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeEmail, &req.FromDate, &req.ToDate, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Create implements leave.Repository.
func (l *leaveRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (id, employee_email, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_email, from_date, to_date, reason, status, decided_by, decided_at, created_at, updated_at
	`

	var created leave.Request
	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeEmail, req.FromDate, req.ToDate, req.Reason, req.Status,
	).Scan(
		&created.ID, &created.EmployeeEmail, &created.FromDate, &created.ToDate, &created.Reason, &created.Status,
		&created.DecidedBy, &created.DecidedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// UpdateStatus implements leave.Repository.
func (l *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedBy string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, decidedBy, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	return nil
}
