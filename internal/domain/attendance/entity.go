package attendance

import (
	"time"
)

// Record is a finalized per-day attendance row. One record is expected per
// employee per day; the durations are computed when the record is finalized.
type Record struct {
	ID              string
	EmployeeEmail   string
	Date            time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	LateMinutes     *int
	WorkMinutes     *int
	OvertimeMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for responses
	EmployeeName *string
	EmployeeCode *string
}

// CheckInEvent is a raw same-day check-in signal that may exist before the
// corresponding Record is finalized. Presence for an in-progress day must be
// computed as the union of Record and CheckInEvent.
type CheckInEvent struct {
	ID            string
	EmployeeEmail string
	Timestamp     time.Time
	LateMinutes   *int
	CreatedAt     time.Time
}

// OvertimeBucket is a server-side aggregation of overtime minutes per
// employee over one grouping period.
type OvertimeBucket struct {
	EmployeeEmail   string
	EmployeeName    *string
	BucketStart     time.Time
	OvertimeMinutes int
}

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)
