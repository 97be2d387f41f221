package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

const recordColumns = `
	a.id, a.employee_email, a.date, a.clock_in, a.clock_out,
	a.late_minutes, a.work_minutes, a.overtime_minutes, a.created_at, a.updated_at,
	e.full_name, e.employee_code
`

func scanRecord(row interface{ Scan(dest ...any) error }) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeEmail, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.LateMinutes, &rec.WorkMinutes, &rec.OvertimeMinutes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

// buildFilterClause assembles the WHERE clause shared by List and the count
// query. Args are appended positionally starting from $1.
func buildFilterClause(filter attendance.Filter) (string, []any) {
	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.EmployeeEmail != nil && *filter.EmployeeEmail != "" {
		add("a.employee_email = $%d", *filter.EmployeeEmail)
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(e.full_name ILIKE $%d OR a.employee_email ILIKE $%d OR e.employee_code ILIKE $%d)", n, n, n,
		))
	}
	if filter.Date != nil && *filter.Date != "" {
		add("a.date = $%d", *filter.Date)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		add("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		add("a.date <= $%d", *filter.EndDate)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

var sortColumns = map[string]string{
	"date":          "a.date",
	"employee_name": "e.full_name",
	"clock_in":      "a.clock_in",
}

// List implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	where, args := buildFilterClause(filter)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM attendance_records a
		JOIN employees e ON e.email = a.employee_email
		%s
	`, where)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "a.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		JOIN employees e ON e.email = a.employee_email
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, recordColumns, where, sortColumn, sortOrder, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetRecordsInRange implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) GetRecordsInRange(ctx context.Context, start, end time.Time, employeeEmail *string, search *string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	args := []any{start, end}
	conditions := []string{"a.date >= $1", "a.date <= $2"}

	if employeeEmail != nil && *employeeEmail != "" {
		args = append(args, *employeeEmail)
		conditions = append(conditions, fmt.Sprintf("a.employee_email = $%d", len(args)))
	}
	if search != nil && *search != "" {
		args = append(args, "%"+*search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(e.full_name ILIKE $%d OR a.employee_email ILIKE $%d OR e.employee_code ILIKE $%d)", n, n, n,
		))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		JOIN employees e ON e.email = a.employee_email
		WHERE %s
		ORDER BY a.date ASC, e.full_name ASC
	`, recordColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records in range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Create implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_email, date, clock_in, clock_out, late_minutes, work_minutes, overtime_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_email, date, clock_in, clock_out, late_minutes, work_minutes, overtime_minutes, created_at, updated_at
	`

	var created attendance.Record
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeEmail, rec.Date, rec.ClockIn, rec.ClockOut,
		rec.LateMinutes, rec.WorkMinutes, rec.OvertimeMinutes,
	).Scan(
		&created.ID, &created.EmployeeEmail, &created.Date, &created.ClockIn, &created.ClockOut,
		&created.LateMinutes, &created.WorkMinutes, &created.OvertimeMinutes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// ExistsForDay implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) ExistsForDay(ctx context.Context, employeeEmail string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_email = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeEmail, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance record: %w", err)
	}

	return exists, nil
}

var granularityTrunc = map[attendance.Granularity]string{
	attendance.GranularityDaily:   "day",
	attendance.GranularityWeekly:  "week",
	attendance.GranularityMonthly: "month",
	attendance.GranularityYearly:  "year",
}

// GetOvertimeBuckets implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) GetOvertimeBuckets(ctx context.Context, start, end time.Time, granularity attendance.Granularity, employeeEmail *string) ([]attendance.OvertimeBucket, error) {
	q := GetQuerier(ctx, a.db)

	trunc, ok := granularityTrunc[granularity]
	if !ok {
		trunc = "day"
	}

	args := []any{start, end}
	emailCondition := ""
	if employeeEmail != nil && *employeeEmail != "" {
		args = append(args, *employeeEmail)
		emailCondition = fmt.Sprintf("AND a.employee_email = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT a.employee_email, e.full_name, date_trunc('%s', a.date) AS bucket_start,
			COALESCE(SUM(a.overtime_minutes), 0) AS overtime_minutes
		FROM attendance_records a
		JOIN employees e ON e.email = a.employee_email
		WHERE a.date >= $1 AND a.date <= $2 %s
		GROUP BY a.employee_email, e.full_name, bucket_start
		ORDER BY bucket_start ASC, e.full_name ASC
	`, trunc, emailCondition)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime buckets: %w", err)
	}
	defer rows.Close()

	var buckets []attendance.OvertimeBucket
	for rows.Next() {
		var bucket attendance.OvertimeBucket
		err := rows.Scan(&bucket.EmployeeEmail, &bucket.EmployeeName, &bucket.BucketStart, &bucket.OvertimeMinutes)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
