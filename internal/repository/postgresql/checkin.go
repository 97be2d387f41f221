package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/database"
)

type checkInRepositoryImpl struct {
	db *database.DB
}

func NewCheckInRepository(db *database.DB) attendance.CheckInRepository {
	return &checkInRepositoryImpl{db: db}
}

// GetEventsByDate implements attendance.CheckInRepository.
func (c *checkInRepositoryImpl) GetEventsByDate(ctx context.Context, date time.Time) ([]attendance.CheckInEvent, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_email, timestamp, late_minutes, created_at
		FROM checkin_events
		WHERE timestamp::date = $1::date
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in events: %w", err)
	}
	defer rows.Close()

	var events []attendance.CheckInEvent
	for rows.Next() {
		var event attendance.CheckInEvent
		err := rows.Scan(&event.ID, &event.EmployeeEmail, &event.Timestamp, &event.LateMinutes, &event.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Create implements attendance.CheckInRepository.
func (c *checkInRepositoryImpl) Create(ctx context.Context, event attendance.CheckInEvent) (attendance.CheckInEvent, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO checkin_events (id, employee_email, timestamp, late_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_email, timestamp, late_minutes, created_at
	`

	var created attendance.CheckInEvent
	err := q.QueryRow(ctx, query, event.ID, event.EmployeeEmail, event.Timestamp, event.LateMinutes).Scan(
		&created.ID, &created.EmployeeEmail, &created.Timestamp, &created.LateMinutes, &created.CreatedAt,
	)
	if err != nil {
		return attendance.CheckInEvent{}, fmt.Errorf("failed to create check-in event: %w", err)
	}

	return created, nil
}

// HasCheckedIn implements attendance.CheckInRepository.
func (c *checkInRepositoryImpl) HasCheckedIn(ctx context.Context, employeeEmail string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM checkin_events
			WHERE employee_email = $1 AND timestamp::date = $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeEmail, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing check-in: %w", err)
	}

	return exists, nil
}
