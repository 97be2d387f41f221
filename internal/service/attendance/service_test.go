package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
)

var testLoc = time.FixedZone("BST", 6*60*60)

type stubEmployeeRepo struct {
	known map[string]struct{}
}

func (s *stubEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	if _, ok := s.known[email]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{Email: email}, nil
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

type stubRecordRepo struct {
	existing    map[string]struct{}
	granularity attendance.Granularity
}

func (s *stubRecordRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (s *stubRecordRepo) GetRecordsInRange(_ context.Context, _, _ time.Time, _, _ *string) ([]attendance.Record, error) {
	return nil, nil
}

func (s *stubRecordRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (s *stubRecordRepo) ExistsForDay(_ context.Context, employeeEmail string, _ time.Time) (bool, error) {
	_, ok := s.existing[employeeEmail]
	return ok, nil
}

func (s *stubRecordRepo) GetOvertimeBuckets(_ context.Context, _, _ time.Time, granularity attendance.Granularity, _ *string) ([]attendance.OvertimeBucket, error) {
	s.granularity = granularity
	return nil, nil
}

type stubCheckInRepo struct {
	checkedIn map[string]struct{}
	created   []attendance.CheckInEvent
}

func (s *stubCheckInRepo) GetEventsByDate(_ context.Context, _ time.Time) ([]attendance.CheckInEvent, error) {
	return s.created, nil
}

func (s *stubCheckInRepo) Create(_ context.Context, event attendance.CheckInEvent) (attendance.CheckInEvent, error) {
	s.created = append(s.created, event)
	return event, nil
}

func (s *stubCheckInRepo) HasCheckedIn(_ context.Context, employeeEmail string, _ time.Time) (bool, error) {
	_, ok := s.checkedIn[employeeEmail]
	return ok, nil
}

type stubShiftRepo struct {
	shifts map[string]string
}

func (s *stubShiftRepo) ListAssignments(_ context.Context) ([]shift.Assignment, error) {
	return nil, nil
}

func (s *stubShiftRepo) GetByEmail(_ context.Context, email string) (shift.Assignment, error) {
	name, ok := s.shifts[email]
	if !ok {
		return shift.Assignment{}, shift.ErrAssignmentNotFound
	}
	return shift.Assignment{EmployeeEmail: email, ShiftName: name}, nil
}

func (s *stubShiftRepo) Upsert(_ context.Context, _ shift.Assignment) error { return nil }

func newTestService(records *stubRecordRepo, checkins *stubCheckInRepo, shifts *stubShiftRepo, now time.Time) *ServiceImpl {
	svc := NewAttendanceService(
		records,
		checkins,
		&stubEmployeeRepo{known: map[string]struct{}{"alice@example.com": {}}},
		shifts,
		testLoc,
	).(*ServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckInComputesLatenessFromShiftStart(t *testing.T) {
	// General shift starts 10:00; checking in at 10:12 is 12 minutes late.
	now := time.Date(2024, 3, 15, 10, 12, 0, 0, testLoc)
	checkins := &stubCheckInRepo{}
	svc := newTestService(
		&stubRecordRepo{},
		checkins,
		&stubShiftRepo{shifts: map[string]string{"alice@example.com": "general"}},
		now,
	)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeEmail: "alice@example.com"})
	require.NoError(t, err)

	require.Len(t, checkins.created, 1)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 12, *resp.LateMinutes)
}

func TestCheckInBeforeShiftStartIsNotLate(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, testLoc)
	checkins := &stubCheckInRepo{}
	svc := newTestService(
		&stubRecordRepo{},
		checkins,
		&stubShiftRepo{shifts: map[string]string{"alice@example.com": "general"}},
		now,
	)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeEmail: "alice@example.com"})
	require.NoError(t, err)
	require.NotNil(t, resp.LateMinutes)
	assert.Zero(t, *resp.LateMinutes)
}

func TestCheckInRejectsDuplicate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 12, 0, 0, testLoc)

	t.Run("already has a raw event", func(t *testing.T) {
		svc := newTestService(
			&stubRecordRepo{},
			&stubCheckInRepo{checkedIn: map[string]struct{}{"alice@example.com": {}}},
			&stubShiftRepo{},
			now,
		)

		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeEmail: "alice@example.com"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("already has a finalized record", func(t *testing.T) {
		svc := newTestService(
			&stubRecordRepo{existing: map[string]struct{}{"alice@example.com": {}}},
			&stubCheckInRepo{},
			&stubShiftRepo{},
			now,
		)

		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeEmail: "alice@example.com"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})
}

func TestListOvertimeNormalizesGranularity(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, testLoc)
	records := &stubRecordRepo{}
	svc := newTestService(records, &stubCheckInRepo{}, &stubShiftRepo{}, now)

	_, err := svc.ListOvertime(context.Background(), attendance.OvertimeFilter{GroupBy: "Weekly"})
	require.NoError(t, err)
	assert.Equal(t, attendance.GranularityWeekly, records.granularity)
}

func TestListOvertimeRejectsUnknownGranularity(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, testLoc)
	svc := newTestService(&stubRecordRepo{}, &stubCheckInRepo{}, &stubShiftRepo{}, now)

	_, err := svc.ListOvertime(context.Background(), attendance.OvertimeFilter{GroupBy: "hourly"})
	assert.Error(t, err)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 12, 0, 0, testLoc)
	svc := newTestService(&stubRecordRepo{}, &stubCheckInRepo{}, &stubShiftRepo{}, now)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeEmail: "ghost@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckInWithoutAssignmentUsesFullDayWindow(t *testing.T) {
	// Full-day fallback starts at midnight, so a 10:12 check-in is "late" by
	// the whole morning. That mirrors how unassigned employees are reported.
	now := time.Date(2024, 3, 15, 10, 12, 0, 0, testLoc)
	svc := newTestService(&stubRecordRepo{}, &stubCheckInRepo{}, &stubShiftRepo{}, now)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeEmail: "alice@example.com"})
	require.NoError(t, err)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 612, *resp.LateMinutes)
}
