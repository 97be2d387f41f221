package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
	"github.com/stafflow/stafflow-backend-go/internal/service/roster"
)

type ServiceImpl struct {
	recordRepo   attendance.RecordRepository
	checkinRepo  attendance.CheckInRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.Repository
	loc          *time.Location
	now          func() time.Time
}

func NewAttendanceService(
	recordRepo attendance.RecordRepository,
	checkinRepo attendance.CheckInRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.Repository,
	loc *time.Location,
) attendance.Service {
	return &ServiceImpl{
		recordRepo:   recordRepo,
		checkinRepo:  checkinRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// ListRecords implements attendance.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, s.toRecordResponse(rec))
	}

	return resp, nil
}

func (s *ServiceImpl) toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:              rec.ID,
		EmployeeEmail:   rec.EmployeeEmail,
		EmployeeName:    rec.EmployeeName,
		EmployeeCode:    rec.EmployeeCode,
		Date:            rec.Date.Format("2006-01-02"),
		LateMinutes:     rec.LateMinutes,
		WorkMinutes:     rec.WorkMinutes,
		OvertimeMinutes: rec.OvertimeMinutes,
	}
	if rec.ClockIn != nil {
		clockIn := rec.ClockIn.In(s.loc).Format("15:04")
		resp.ClockIn = &clockIn
	}
	if rec.ClockOut != nil {
		clockOut := rec.ClockOut.In(s.loc).Format("15:04")
		resp.ClockOut = &clockOut
	}
	return resp
}

// ListOvertime implements attendance.Service.
func (s *ServiceImpl) ListOvertime(ctx context.Context, filter attendance.OvertimeFilter) ([]attendance.OvertimeBucketResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Default window is the trailing 30 days.
	end := s.now().In(s.loc)
	start := end.AddDate(0, 0, -30)
	if filter.StartDate != nil && *filter.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", *filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_date: %w", err)
		}
		start = parsed
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", *filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_date: %w", err)
		}
		end = parsed
	}

	buckets, err := s.recordRepo.GetOvertimeBuckets(ctx, start, end, attendance.Granularity(filter.GroupBy), filter.EmployeeEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime buckets: %w", err)
	}

	resp := make([]attendance.OvertimeBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		resp = append(resp, attendance.OvertimeBucketResponse{
			EmployeeEmail:   bucket.EmployeeEmail,
			EmployeeName:    bucket.EmployeeName,
			BucketStart:     bucket.BucketStart.Format("2006-01-02"),
			OvertimeMinutes: bucket.OvertimeMinutes,
			Overtime:        roster.FormatDuration(bucket.OvertimeMinutes),
		})
	}

	return resp, nil
}

// CheckIn implements attendance.Service. Lateness is measured against the
// start of the employee's assigned shift window in the business timezone.
func (s *ServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now().In(s.loc)

	checkedIn, err := s.checkinRepo.HasCheckedIn(ctx, req.EmployeeEmail, now)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check existing check-in: %w", err)
	}
	if !checkedIn {
		checkedIn, err = s.recordRepo.ExistsForDay(ctx, req.EmployeeEmail, now)
		if err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to check attendance record: %w", err)
		}
	}
	if checkedIn {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	var shiftName string
	assignment, err := s.shiftRepo.GetByEmail(ctx, req.EmployeeEmail)
	if err == nil {
		shiftName = assignment.ShiftName
	} else if !errors.Is(err, shift.ErrAssignmentNotFound) {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	start, _ := roster.ResolveShiftWindow(shiftName, now, s.loc)
	late := int(now.Sub(start).Minutes())
	if late < 0 {
		late = 0
	}

	event, err := s.checkinRepo.Create(ctx, attendance.CheckInEvent{
		ID:            uuid.NewString(),
		EmployeeEmail: req.EmployeeEmail,
		Timestamp:     now,
		LateMinutes:   &late,
	})
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create check-in event: %w", err)
	}

	return s.toCheckInResponse(event), nil
}

// ListCheckIns implements attendance.Service.
func (s *ServiceImpl) ListCheckIns(ctx context.Context, date string) ([]attendance.CheckInResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	events, err := s.checkinRepo.GetEventsByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in events: %w", err)
	}

	resp := make([]attendance.CheckInResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, s.toCheckInResponse(event))
	}

	return resp, nil
}

func (s *ServiceImpl) toCheckInResponse(event attendance.CheckInEvent) attendance.CheckInResponse {
	return attendance.CheckInResponse{
		ID:            event.ID,
		EmployeeEmail: event.EmployeeEmail,
		Timestamp:     event.Timestamp.In(s.loc).Format(time.RFC3339),
		LateMinutes:   event.LateMinutes,
	}
}
