package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

// ListAssignments implements shift.Repository.
func (s *shiftRepositoryImpl) ListAssignments(ctx context.Context) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT employee_email, shift_name, updated_at
		FROM shift_assignments
		ORDER BY employee_email ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var assignment shift.Assignment
		err := rows.Scan(&assignment.EmployeeEmail, &assignment.ShiftName, &assignment.UpdatedAt)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetByEmail implements shift.Repository.
func (s *shiftRepositoryImpl) GetByEmail(ctx context.Context, email string) (shift.Assignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT employee_email, shift_name, updated_at
		FROM shift_assignments
		WHERE employee_email = $1
	`

	var assignment shift.Assignment
	err := q.QueryRow(ctx, query, email).Scan(&assignment.EmployeeEmail, &assignment.ShiftName, &assignment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return assignment, nil
}

// Upsert implements shift.Repository.
func (s *shiftRepositoryImpl) Upsert(ctx context.Context, assignment shift.Assignment) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shift_assignments (employee_email, shift_name)
		VALUES ($1, $2)
		ON CONFLICT (employee_email)
		DO UPDATE SET shift_name = EXCLUDED.shift_name, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, assignment.EmployeeEmail, assignment.ShiftName); err != nil {
		return fmt.Errorf("failed to upsert shift assignment: %w", err)
	}

	return nil
}
