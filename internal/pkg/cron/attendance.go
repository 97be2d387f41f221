package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
)

// AttendanceJobs folds raw check-in events into finalized attendance records
// once the day is over. Roster derivation only consults raw events for the
// current day, so yesterday's events must land in attendance_records or the
// employees would read as absent.
type AttendanceJobs struct {
	recordRepo  attendance.RecordRepository
	checkinRepo attendance.CheckInRepository
	loc         *time.Location
}

func NewAttendanceJobs(
	recordRepo attendance.RecordRepository,
	checkinRepo attendance.CheckInRepository,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		recordRepo:  recordRepo,
		checkinRepo: checkinRepo,
		loc:         loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("finalize_attendance_records", 1*time.Hour, j.FinalizeYesterday)
}

// FinalizeYesterday creates an attendance record for every check-in event of
// the previous business day that has no record yet. It runs hourly but only
// acts during the first hour after midnight in the business timezone, so a
// restarted server retries at most one extra time.
func (j *AttendanceJobs) FinalizeYesterday(ctx context.Context) error {
	now := time.Now().In(j.loc)
	if now.Hour() != 0 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)

	events, err := j.checkinRepo.GetEventsByDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to get check-in events: %w", err)
	}
	if len(events) == 0 {
		slog.Info("Cron: No check-in events to finalize", "date", yesterday.Format("2006-01-02"))
		return nil
	}

	finalized := 0
	for _, event := range events {
		exists, err := j.recordRepo.ExistsForDay(ctx, event.EmployeeEmail, yesterday)
		if err != nil {
			return fmt.Errorf("failed to check attendance record: %w", err)
		}
		if exists {
			continue
		}

		clockIn := event.Timestamp
		_, err = j.recordRepo.Create(ctx, attendance.Record{
			ID:            uuid.NewString(),
			EmployeeEmail: event.EmployeeEmail,
			Date:          time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC),
			ClockIn:       &clockIn,
			LateMinutes:   event.LateMinutes,
		})
		if err != nil {
			return fmt.Errorf("failed to finalize attendance record: %w", err)
		}
		finalized++
	}

	slog.Info("Cron: Finalized attendance records",
		"date", yesterday.Format("2006-01-02"),
		"events", len(events),
		"created", finalized,
	)
	return nil
}
