package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/stafflow-backend-go/internal/domain/leave"
)

func TestParseLeaveDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{name: "ISO format", input: "2024-03-05", want: "2024-03-05", valid: true},
		{name: "legacy sheet format", input: "05-Mar-2024", want: "2024-03-05", valid: true},
		{name: "garbage", input: "next tuesday", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLeaveDate(tt.input)
			require.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestBuildLeaveDayIndexClampsToWindow(t *testing.T) {
	requests := []leave.Request{
		{EmployeeEmail: "alice@example.com", FromDate: "2024-03-01", ToDate: "2024-03-03", Status: leave.StatusApproved},
	}
	start := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	idx, skipped := BuildLeaveDayIndex(requests, start, end)

	assert.Zero(t, skipped)
	assert.True(t, idx.OnLeave("alice@example.com", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, idx.OnLeave("alice@example.com", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.False(t, idx.OnLeave("alice@example.com", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, idx.OnLeave("alice@example.com", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Len(t, idx, 2)
}

func TestBuildLeaveDayIndexWindowInBusinessZone(t *testing.T) {
	// Leave dates parse as UTC midnights; a window built in the business
	// timezone must still cover every requested calendar day.
	requests := []leave.Request{
		{EmployeeEmail: "alice@example.com", FromDate: "2024-03-15", ToDate: "2024-03-16", Status: leave.StatusApproved},
	}
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, testLoc)
	end := time.Date(2024, 3, 16, 0, 0, 0, 0, testLoc)

	idx, skipped := BuildLeaveDayIndex(requests, start, end)

	assert.Zero(t, skipped)
	assert.True(t, idx.OnLeave("alice@example.com", start))
	assert.True(t, idx.OnLeave("alice@example.com", end))
	assert.Len(t, idx, 2)
}

func TestBuildLeaveDayIndexIgnoresNonApproved(t *testing.T) {
	requests := []leave.Request{
		{EmployeeEmail: "bob@example.com", FromDate: "2024-03-04", ToDate: "2024-03-04", Status: leave.StatusPending},
		{EmployeeEmail: "carol@example.com", FromDate: "2024-03-04", ToDate: "2024-03-04", Status: leave.StatusRejected},
	}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	idx, skipped := BuildLeaveDayIndex(requests, start, end)

	assert.Zero(t, skipped)
	assert.Empty(t, idx)
}

func TestBuildLeaveDayIndexCountsUnparseable(t *testing.T) {
	requests := []leave.Request{
		{EmployeeEmail: "dave@example.com", FromDate: "soon", ToDate: "2024-03-04", Status: leave.StatusApproved},
		{EmployeeEmail: "erin@example.com", FromDate: "2024-03-04", ToDate: "whenever", Status: leave.StatusApproved},
		{EmployeeEmail: "frank@example.com", FromDate: "04-Mar-2024", ToDate: "05-Mar-2024", Status: leave.StatusApproved},
	}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	idx, skipped := BuildLeaveDayIndex(requests, start, end)

	assert.Equal(t, 2, skipped)
	assert.True(t, idx.OnLeave("frank@example.com", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, idx.OnLeave("frank@example.com", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.False(t, idx.OnLeave("dave@example.com", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
}

func TestBuildLeaveDayIndexOutsideWindowNotSkipped(t *testing.T) {
	requests := []leave.Request{
		{EmployeeEmail: "grace@example.com", FromDate: "2024-01-01", ToDate: "2024-01-05", Status: leave.StatusApproved},
	}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	idx, skipped := BuildLeaveDayIndex(requests, start, end)

	// A request entirely outside the window is dropped silently; only
	// unparseable dates count as skipped.
	assert.Zero(t, skipped)
	assert.Empty(t, idx)
}

func TestBuildLeaveDayIndexIsIdempotent(t *testing.T) {
	requests := []leave.Request{
		{EmployeeEmail: "alice@example.com", FromDate: "2024-03-02", ToDate: "2024-03-03", Status: leave.StatusApproved},
		{EmployeeEmail: "bob@example.com", FromDate: "01-Mar-2024", ToDate: "01-Mar-2024", Status: leave.StatusApproved},
	}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	idx1, skipped1 := BuildLeaveDayIndex(requests, start, end)
	idx2, skipped2 := BuildLeaveDayIndex(requests, start, end)

	assert.Equal(t, idx1, idx2)
	assert.Equal(t, skipped1, skipped2)
}
