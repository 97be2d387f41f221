package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

type stubRecordRepo struct {
	records []attendance.Record
}

func (s *stubRecordRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.Record, int64, error) {
	return s.records, int64(len(s.records)), nil
}

func (s *stubRecordRepo) GetRecordsInRange(_ context.Context, _, _ time.Time, _, _ *string) ([]attendance.Record, error) {
	return s.records, nil
}

func (s *stubRecordRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (s *stubRecordRepo) ExistsForDay(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

func (s *stubRecordRepo) GetOvertimeBuckets(_ context.Context, _, _ time.Time, _ attendance.Granularity, _ *string) ([]attendance.OvertimeBucket, error) {
	return nil, nil
}

type stubCheckInRepo struct {
	events []attendance.CheckInEvent
	calls  int
}

func (s *stubCheckInRepo) GetEventsByDate(_ context.Context, _ time.Time) ([]attendance.CheckInEvent, error) {
	s.calls++
	return s.events, nil
}

func (s *stubCheckInRepo) Create(_ context.Context, event attendance.CheckInEvent) (attendance.CheckInEvent, error) {
	return event, nil
}

func (s *stubCheckInRepo) HasCheckedIn(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

type stubLeaveRepo struct {
	requests []leave.Request
}

func (s *stubLeaveRepo) ListAll(_ context.Context) ([]leave.Request, error) {
	return s.requests, nil
}

func (s *stubLeaveRepo) GetByID(_ context.Context, _ string) (leave.Request, error) {
	return leave.Request{}, leave.ErrRequestNotFound
}

func (s *stubLeaveRepo) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	return req, nil
}

func (s *stubLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leave.Status, _ string) error {
	return nil
}

type stubShiftRepo struct {
	assignments []shift.Assignment
}

func (s *stubShiftRepo) ListAssignments(_ context.Context) ([]shift.Assignment, error) {
	return s.assignments, nil
}

func (s *stubShiftRepo) GetByEmail(_ context.Context, _ string) (shift.Assignment, error) {
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func (s *stubShiftRepo) Upsert(_ context.Context, _ shift.Assignment) error { return nil }

func strPtr(s string) *string { return &s }

func newTestService(
	employees []employee.Employee,
	records []attendance.Record,
	events *stubCheckInRepo,
	requests []leave.Request,
	assignments []shift.Assignment,
	now time.Time,
) *ServiceImpl {
	svc := NewRosterService(
		&stubEmployeeRepo{employees: employees},
		&stubRecordRepo{records: records},
		events,
		&stubLeaveRepo{requests: requests},
		&stubShiftRepo{assignments: assignments},
		testLoc,
	).(*ServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestBuildRosterSingleDayToday(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	now := at(day, 15, 0)

	employees := []employee.Employee{
		{Email: "alice@example.com", FullName: "Alice Rahman", EmployeeCode: "EMP-001"},
		{Email: "bob@example.com", FullName: "Bob Karim", EmployeeCode: "EMP-002"},
		{Email: "carol@example.com", FullName: "Carol Das", EmployeeCode: "EMP-003"},
		{Email: "dave@example.com", FullName: "Dave Islam", EmployeeCode: "EMP-004"},
	}
	events := &stubCheckInRepo{events: []attendance.CheckInEvent{
		{EmployeeEmail: "alice@example.com", Timestamp: at(day, 10, 12), LateMinutes: intPtr(12)},
	}}
	requests := []leave.Request{
		{EmployeeEmail: "bob@example.com", FromDate: "2024-03-15", ToDate: "2024-03-16", Status: leave.StatusApproved},
	}
	assignments := []shift.Assignment{
		{EmployeeEmail: "alice@example.com", ShiftName: "general"},
		{EmployeeEmail: "carol@example.com", ShiftName: "morning"},
		{EmployeeEmail: "dave@example.com", ShiftName: "evening"},
	}

	svc := newTestService(employees, nil, events, requests, assignments, now)

	resp, err := svc.BuildRoster(context.Background(), roster.Filter{Date: strPtr("2024-03-15")})
	require.NoError(t, err)

	assert.True(t, resp.SingleDay)
	assert.Equal(t, 1, events.calls)
	require.Len(t, resp.Rows, 4)

	byEmail := make(map[string]roster.Row)
	for _, row := range resp.Rows {
		byEmail[row.EmployeeEmail] = row
	}

	assert.Equal(t, roster.StatusPresent, byEmail["alice@example.com"].Status)
	assert.Equal(t, 12, byEmail["alice@example.com"].LateMinutes)
	assert.Equal(t, roster.StatusOnLeave, byEmail["bob@example.com"].Status)
	assert.Equal(t, roster.StatusAbsent, byEmail["carol@example.com"].Status)      // morning window closed at 14:00
	assert.Equal(t, roster.StatusYetToCheckIn, byEmail["dave@example.com"].Status) // evening window still open

	assert.Equal(t, 4, resp.Summary.TotalEmployees)
	assert.Equal(t, 1, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.OnLeave)
	assert.Equal(t, 1, resp.Summary.Absent)
	assert.Equal(t, 1, resp.Summary.Late)
}

func TestBuildRosterSingleDayTodayWestOfUTC(t *testing.T) {
	// West of UTC a UTC-parsed date string lands on the previous calendar
	// day, which used to make the "is this today" check fail and drop the
	// live check-in events from the presence union.
	westLoc := time.FixedZone("CST", -6*60*60)
	now := time.Date(2024, 3, 15, 15, 0, 0, 0, westLoc)

	employees := []employee.Employee{
		{Email: "alice@example.com", FullName: "Alice Rahman", EmployeeCode: "EMP-001"},
	}
	events := &stubCheckInRepo{events: []attendance.CheckInEvent{
		{EmployeeEmail: "alice@example.com", Timestamp: time.Date(2024, 3, 15, 10, 12, 0, 0, westLoc), LateMinutes: intPtr(12)},
	}}
	assignments := []shift.Assignment{
		{EmployeeEmail: "alice@example.com", ShiftName: "general"},
	}

	svc := NewRosterService(
		&stubEmployeeRepo{employees: employees},
		&stubRecordRepo{},
		events,
		&stubLeaveRepo{},
		&stubShiftRepo{assignments: assignments},
		westLoc,
	).(*ServiceImpl)
	svc.now = func() time.Time { return now }

	resp, err := svc.BuildRoster(context.Background(), roster.Filter{Date: strPtr("2024-03-15")})
	require.NoError(t, err)

	assert.Equal(t, 1, events.calls)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, roster.StatusPresent, resp.Rows[0].Status)
	assert.Equal(t, 12, resp.Rows[0].LateMinutes)
	assert.Equal(t, 1, resp.Summary.Present)
}

func TestBuildRosterPastDaySkipsEvents(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := at(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 12, 0)

	employees := []employee.Employee{
		{Email: "alice@example.com", FullName: "Alice Rahman", EmployeeCode: "EMP-001"},
	}
	records := []attendance.Record{
		{
			EmployeeEmail: "alice@example.com",
			Date:          day,
			ClockIn:       timePtr(at(day, 10, 5)),
			ClockOut:      timePtr(at(day, 18, 10)),
			LateMinutes:   intPtr(5),
			WorkMinutes:   intPtr(485),
		},
	}
	events := &stubCheckInRepo{}

	svc := newTestService(employees, records, events, nil, nil, now)

	resp, err := svc.BuildRoster(context.Background(), roster.Filter{Date: strPtr("2024-03-10")})
	require.NoError(t, err)

	assert.Zero(t, events.calls)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, roster.StatusPresent, resp.Rows[0].Status)
	assert.Equal(t, "8h 5m", resp.Rows[0].Working)
}

func TestBuildRosterMultiDayAggregates(t *testing.T) {
	now := at(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), 12, 0)

	employees := []employee.Employee{
		{Email: "alice@example.com", FullName: "Alice Rahman", EmployeeCode: "EMP-001"},
		{Email: "bob@example.com", FullName: "Bob Karim", EmployeeCode: "EMP-002"},
	}
	d1 := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{EmployeeEmail: "alice@example.com", Date: d1, ClockIn: timePtr(at(d1, 10, 0)), LateMinutes: intPtr(0), WorkMinutes: intPtr(480), OvertimeMinutes: intPtr(0)},
		{EmployeeEmail: "alice@example.com", Date: d2, ClockIn: timePtr(at(d2, 10, 30)), LateMinutes: intPtr(30), WorkMinutes: intPtr(450), OvertimeMinutes: intPtr(60)},
	}
	events := &stubCheckInRepo{}

	svc := newTestService(employees, records, events, nil, nil, now)

	resp, err := svc.BuildRoster(context.Background(), roster.Filter{
		StartDate: strPtr("2024-03-11"),
		EndDate:   strPtr("2024-03-15"),
	})
	require.NoError(t, err)

	assert.False(t, resp.SingleDay)
	assert.Zero(t, events.calls)
	assert.Empty(t, resp.Rows)
	require.Len(t, resp.Aggregates, 2)

	assert.Equal(t, 2, resp.Aggregates[0].DaysPresent)
	assert.Equal(t, 30, resp.Aggregates[0].LateMinutes)
	assert.Equal(t, "15h 30m", resp.Aggregates[0].Working)
	assert.Equal(t, "1h 0m", resp.Aggregates[0].Overtime)
	assert.Zero(t, resp.Aggregates[1].DaysPresent)

	assert.Equal(t, 2, resp.Summary.TotalEmployees)
	assert.Equal(t, 1, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Absent)
	assert.Equal(t, 1, resp.Summary.Late)
}

func TestBuildRosterValidatesFilter(t *testing.T) {
	svc := newTestService(nil, nil, &stubCheckInRepo{}, nil, nil, time.Now())

	_, err := svc.BuildRoster(context.Background(), roster.Filter{})
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := at(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 12, 0)

	employees := []employee.Employee{
		{Email: "alice@example.com", FullName: "Alice Rahman", EmployeeCode: "EMP-001"},
	}
	records := []attendance.Record{
		{
			EmployeeEmail:   "alice@example.com",
			EmployeeName:    strPtr("Alice Rahman"),
			EmployeeCode:    strPtr("EMP-001"),
			Date:            day,
			ClockIn:         timePtr(time.Date(2024, 3, 10, 4, 12, 0, 0, time.UTC)), // 10:12 in the business zone
			LateMinutes:     intPtr(12),
			WorkMinutes:     intPtr(498),
			OvertimeMinutes: intPtr(18),
		},
	}

	svc := newTestService(employees, records, &stubCheckInRepo{}, nil, nil, now)

	out, err := svc.ExportCSV(context.Background(), roster.Filter{
		StartDate: strPtr("2024-03-10"),
		EndDate:   strPtr("2024-03-12"),
	})
	require.NoError(t, err)

	assert.Contains(t, string(out), "2024-03-10,Alice Rahman,alice@example.com,EMP-001,Present,10:12,12,,8h 18m,0h 18m")
}
