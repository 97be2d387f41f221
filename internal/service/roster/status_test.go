package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
)

// at builds a clock reading on the given day in the test timezone.
func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, testLoc)
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		present   bool
		onLeave   bool
		shiftName string
		day       time.Time
		now       time.Time
		want      roster.Status
	}{
		{
			name:    "check-in wins over everything",
			present: true,
			onLeave: true,
			day:     today,
			now:     at(today, 9, 0),
			want:    roster.StatusPresent,
		},
		{
			name:    "approved leave without check-in",
			onLeave: true,
			day:     today,
			now:     at(today, 9, 0),
			want:    roster.StatusOnLeave,
		},
		{
			name:      "past day without check-in",
			shiftName: "general",
			day:       yesterday,
			now:       at(today, 9, 0),
			want:      roster.StatusAbsent,
		},
		{
			name:      "future day",
			shiftName: "general",
			day:       tomorrow,
			now:       at(today, 9, 0),
			want:      roster.StatusNotStarted,
		},
		{
			name:      "today before shift start",
			shiftName: "general",
			day:       today,
			now:       at(today, 8, 30),
			want:      roster.StatusNotStarted,
		},
		{
			name:      "morning shift mid-window",
			shiftName: "morning",
			day:       today,
			now:       at(today, 10, 0),
			want:      roster.StatusYetToCheckIn,
		},
		{
			name:      "morning shift after window closes",
			shiftName: "morning",
			day:       today,
			now:       at(today, 15, 0),
			want:      roster.StatusAbsent,
		},
		{
			name:      "window end is inclusive",
			shiftName: "general",
			day:       today,
			now:       at(today, 18, 0),
			want:      roster.StatusYetToCheckIn,
		},
		{
			name: "unassigned shift stays open until midnight",
			day:  today,
			now:  at(today, 23, 30),
			want: roster.StatusYetToCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.present, tt.onLeave, tt.shiftName, tt.day, tt.now, testLoc)
			assert.Equal(t, tt.want, got)
		})
	}
}
