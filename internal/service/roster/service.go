package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/domain/employee"
	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
)

type ServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordRepo   attendance.RecordRepository
	checkinRepo  attendance.CheckInRepository
	leaveRepo    leave.Repository
	shiftRepo    shift.Repository
	loc          *time.Location
	now          func() time.Time
}

func NewRosterService(
	employeeRepo employee.EmployeeRepository,
	recordRepo attendance.RecordRepository,
	checkinRepo attendance.CheckInRepository,
	leaveRepo leave.Repository,
	shiftRepo shift.Repository,
	loc *time.Location,
) roster.Service {
	return &ServiceImpl{
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		checkinRepo:  checkinRepo,
		leaveRepo:    leaveRepo,
		shiftRepo:    shiftRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// snapshot is everything one derivation needs, fetched up front so the
// computation itself stays pure.
type snapshot struct {
	employees []employee.Employee
	shifts    map[string]string
	records   []attendance.Record
	events    []attendance.CheckInEvent
	leaveIdx  LeaveDayIndex
	requests  []leave.Request
	start     time.Time
	end       time.Time
	singleDay bool
}

func (s *ServiceImpl) fetch(ctx context.Context, filter roster.Filter) (snapshot, error) {
	var snap snapshot

	// Filter dates are calendar days in the business timezone. Parsing them
	// as UTC would land on the previous day for zones west of UTC and break
	// the "is this today" check below.
	if filter.Date != nil && *filter.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", *filter.Date, s.loc)
		if err != nil {
			return snapshot{}, fmt.Errorf("failed to parse date: %w", err)
		}
		snap.start, snap.end = day, day
	} else {
		start, err := time.ParseInLocation("2006-01-02", *filter.StartDate, s.loc)
		if err != nil {
			return snapshot{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		end, err := time.ParseInLocation("2006-01-02", *filter.EndDate, s.loc)
		if err != nil {
			return snapshot{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		snap.start, snap.end = start, end
	}
	snap.singleDay = snap.start.Equal(snap.end)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list employees: %w", err)
	}
	snap.employees = filterEmployees(employees, filter)

	assignments, err := s.shiftRepo.ListAssignments(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	snap.shifts = make(map[string]string, len(assignments))
	for _, a := range assignments {
		snap.shifts[a.EmployeeEmail] = a.ShiftName
	}

	snap.records, err = s.recordRepo.GetRecordsInRange(ctx, snap.start, snap.end, filter.EmployeeEmail, filter.Search)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	snap.requests, err = s.leaveRepo.ListAll(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var skipped int
	snap.leaveIdx, skipped = BuildLeaveDayIndex(snap.requests, snap.start, snap.end)
	if skipped > 0 {
		slog.Warn("Skipped leave requests with unparseable dates", "count", skipped)
	}

	// Raw check-in events are only consulted while the day is still in
	// progress; past days are expected to be fully finalized.
	if snap.singleDay && sameDay(snap.start, s.now(), s.loc) {
		snap.events, err = s.checkinRepo.GetEventsByDate(ctx, snap.start)
		if err != nil {
			return snapshot{}, fmt.Errorf("failed to get check-in events: %w", err)
		}
	}

	return snap, nil
}

func filterEmployees(employees []employee.Employee, filter roster.Filter) []employee.Employee {
	if filter.EmployeeEmail == nil && filter.Search == nil {
		return employees
	}

	filtered := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if filter.EmployeeEmail != nil && !strings.EqualFold(emp.Email, *filter.EmployeeEmail) {
			continue
		}
		if filter.Search != nil && *filter.Search != "" {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(emp.FullName), needle) &&
				!strings.Contains(strings.ToLower(emp.Email), needle) &&
				!strings.Contains(strings.ToLower(emp.EmployeeCode), needle) {
				continue
			}
		}
		filtered = append(filtered, emp)
	}
	return filtered
}

// BuildRoster implements roster.Service.
func (s *ServiceImpl) BuildRoster(ctx context.Context, filter roster.Filter) (roster.Response, error) {
	if err := filter.Validate(); err != nil {
		return roster.Response{}, err
	}

	snap, err := s.fetch(ctx, filter)
	if err != nil {
		return roster.Response{}, err
	}

	resp := roster.Response{
		StartDate: snap.start.Format("2006-01-02"),
		EndDate:   snap.end.Format("2006-01-02"),
		SingleDay: snap.singleDay,
	}

	if snap.singleDay {
		resp.Rows = s.buildDayRows(snap)
		presence := PresenceSet(snap.records, snap.events)
		lateSet := LateSet(snap.records, snap.events)
		resp.Summary = SummarizeDay(snap.employees, snap.shifts, presence, snap.leaveIdx, lateSet, snap.start, s.now(), s.loc)
	} else {
		resp.Aggregates = s.buildAggregateRows(snap)
		resp.Summary = SummarizeRange(snap.employees, snap.records, snap.requests, snap.start, snap.end)
	}

	return resp, nil
}

func (s *ServiceImpl) buildDayRows(snap snapshot) []roster.Row {
	presence := PresenceSet(snap.records, snap.events)

	recByEmail := make(map[string]attendance.Record, len(snap.records))
	for _, rec := range snap.records {
		recByEmail[rec.EmployeeEmail] = rec
	}
	evByEmail := make(map[string]attendance.CheckInEvent, len(snap.events))
	for _, ev := range snap.events {
		evByEmail[ev.EmployeeEmail] = ev
	}

	now := s.now()
	rows := make([]roster.Row, 0, len(snap.employees))
	for _, emp := range snap.employees {
		_, present := presence[emp.Email]
		onLeave := snap.leaveIdx.OnLeave(emp.Email, snap.start)
		shiftName := snap.shifts[emp.Email]

		row := roster.Row{
			EmployeeEmail: emp.Email,
			EmployeeName:  emp.FullName,
			EmployeeCode:  emp.EmployeeCode,
			Status:        DeriveStatus(present, onLeave, shiftName, snap.start, now, s.loc),
			Working:       FormatDuration(0),
			Overtime:      FormatDuration(0),
		}
		if shiftName != "" {
			name := shiftName
			row.ShiftName = &name
		}

		if rec, ok := recByEmail[emp.Email]; ok {
			if rec.LateMinutes != nil {
				row.LateMinutes = *rec.LateMinutes
			}
			if rec.WorkMinutes != nil {
				row.Working = FormatDuration(*rec.WorkMinutes)
			}
			if rec.OvertimeMinutes != nil {
				row.Overtime = FormatDuration(*rec.OvertimeMinutes)
			}
		} else if ev, ok := evByEmail[emp.Email]; ok && ev.LateMinutes != nil {
			row.LateMinutes = *ev.LateMinutes
		}

		rows = append(rows, row)
	}

	return rows
}

func (s *ServiceImpl) buildAggregateRows(snap snapshot) []roster.AggregateRow {
	type totals struct {
		daysPresent int
		late        int
		work        int
		overtime    int
	}
	byEmail := make(map[string]*totals, len(snap.employees))
	for _, emp := range snap.employees {
		byEmail[emp.Email] = &totals{}
	}

	for _, rec := range snap.records {
		agg, ok := byEmail[rec.EmployeeEmail]
		if !ok {
			continue
		}
		if rec.ClockIn != nil {
			agg.daysPresent++
		}
		if rec.LateMinutes != nil {
			agg.late += *rec.LateMinutes
		}
		if rec.WorkMinutes != nil {
			agg.work += *rec.WorkMinutes
		}
		if rec.OvertimeMinutes != nil {
			agg.overtime += *rec.OvertimeMinutes
		}
	}

	rows := make([]roster.AggregateRow, 0, len(snap.employees))
	for _, emp := range snap.employees {
		agg := byEmail[emp.Email]
		rows = append(rows, roster.AggregateRow{
			EmployeeEmail: emp.Email,
			EmployeeName:  emp.FullName,
			EmployeeCode:  emp.EmployeeCode,
			DaysPresent:   agg.daysPresent,
			LateMinutes:   agg.late,
			Working:       FormatDuration(agg.work),
			Overtime:      FormatDuration(agg.overtime),
		})
	}

	return rows
}

// ExportCSV implements roster.Service.
func (s *ServiceImpl) ExportCSV(ctx context.Context, filter roster.Filter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rows := make([]ExportRow, 0, len(snap.records))
	for _, rec := range snap.records {
		row := ExportRow{
			Date:          rec.Date.Format("2006-01-02"),
			EmployeeEmail: rec.EmployeeEmail,
			Status: string(DeriveStatus(
				rec.ClockIn != nil,
				snap.leaveIdx.OnLeave(rec.EmployeeEmail, rec.Date),
				snap.shifts[rec.EmployeeEmail],
				rec.Date, now, s.loc,
			)),
			Working:  FormatDuration(0),
			Overtime: FormatDuration(0),
		}
		if rec.EmployeeName != nil {
			row.EmployeeName = *rec.EmployeeName
		}
		if rec.EmployeeCode != nil {
			row.EmployeeCode = *rec.EmployeeCode
		}
		if rec.ClockIn != nil {
			row.CheckIn = rec.ClockIn.In(s.loc).Format("15:04")
		}
		if rec.ClockOut != nil {
			row.CheckOut = rec.ClockOut.In(s.loc).Format("15:04")
		}
		if rec.LateMinutes != nil {
			row.LateMinutes = *rec.LateMinutes
		}
		if rec.WorkMinutes != nil {
			row.Working = FormatDuration(*rec.WorkMinutes)
		}
		if rec.OvertimeMinutes != nil {
			row.Overtime = FormatDuration(*rec.OvertimeMinutes)
		}
		rows = append(rows, row)
	}

	return BuildCSV(rows)
}
