package attendance

import (
	"context"
	"time"
)

type RecordRepository interface {
	List(ctx context.Context, filter Filter) ([]Record, int64, error)
	// GetRecordsInRange returns every record whose date falls in
	// [start, end] inclusive, unpaginated, for roster derivation.
	GetRecordsInRange(ctx context.Context, start, end time.Time, employeeEmail *string, search *string) ([]Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	ExistsForDay(ctx context.Context, employeeEmail string, date time.Time) (bool, error)
	GetOvertimeBuckets(ctx context.Context, start, end time.Time, granularity Granularity, employeeEmail *string) ([]OvertimeBucket, error)
}

type CheckInRepository interface {
	GetEventsByDate(ctx context.Context, date time.Time) ([]CheckInEvent, error)
	Create(ctx context.Context, event CheckInEvent) (CheckInEvent, error)
	HasCheckedIn(ctx context.Context, employeeEmail string, date time.Time) (bool, error)
}
