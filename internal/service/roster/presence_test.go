package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestPresenceSet(t *testing.T) {
	clockIn := time.Date(2024, 3, 15, 4, 12, 0, 0, time.UTC)

	records := []attendance.Record{
		{EmployeeEmail: "alice@example.com", ClockIn: timePtr(clockIn)},
		{EmployeeEmail: "bob@example.com"}, // finalized row without a clock-in
	}
	events := []attendance.CheckInEvent{
		{EmployeeEmail: "carol@example.com", Timestamp: clockIn},
		{EmployeeEmail: "alice@example.com", Timestamp: clockIn}, // already present via record
	}

	present := PresenceSet(records, events)

	assert.Len(t, present, 2)
	assert.Contains(t, present, "alice@example.com")
	assert.Contains(t, present, "carol@example.com")
	assert.NotContains(t, present, "bob@example.com")
}

func TestLateSetDeduplicatesAcrossSources(t *testing.T) {
	records := []attendance.Record{
		{EmployeeEmail: "alice@example.com", LateMinutes: intPtr(12)},
		{EmployeeEmail: "bob@example.com", LateMinutes: intPtr(0)},
		{EmployeeEmail: "carol@example.com"},
	}
	events := []attendance.CheckInEvent{
		{EmployeeEmail: "alice@example.com", LateMinutes: intPtr(12)},
		{EmployeeEmail: "dave@example.com", LateMinutes: intPtr(3)},
	}

	late := LateSet(records, events)

	assert.Len(t, late, 2)
	assert.Contains(t, late, "alice@example.com")
	assert.Contains(t, late, "dave@example.com")
	assert.NotContains(t, late, "bob@example.com")
	assert.NotContains(t, late, "carol@example.com")
}
