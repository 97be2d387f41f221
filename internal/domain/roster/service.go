package roster

import "context"

type Service interface {
	// BuildRoster derives roster rows and summary counters for the
	// requested range from attendance records, same-day check-in events,
	// approved leave requests and shift assignments.
	BuildRoster(ctx context.Context, filter Filter) (Response, error)
	// ExportCSV serializes the detailed attendance rows for the range.
	ExportCSV(ctx context.Context, filter Filter) ([]byte, error)
}
