package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testLoc = time.FixedZone("BST", 6*60*60)

func TestResolveShiftWindow(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		shiftName string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "morning shift",
			shiftName: "morning",
			wantStart: "06:00:00",
			wantEnd:   "14:00:00",
		},
		{
			name:      "general shift",
			shiftName: "general",
			wantStart: "10:00:00",
			wantEnd:   "18:00:00",
		},
		{
			name:      "evening shift",
			shiftName: "evening",
			wantStart: "14:05:00",
			wantEnd:   "22:00:00",
		},
		{
			name:      "mixed case is recognized",
			shiftName: "Morning",
			wantStart: "06:00:00",
			wantEnd:   "14:00:00",
		},
		{
			name:      "surrounding whitespace is ignored",
			shiftName: "  evening ",
			wantStart: "14:05:00",
			wantEnd:   "22:00:00",
		},
		{
			name:      "unrecognized shift covers the whole day",
			shiftName: "night",
			wantStart: "00:00:00",
			wantEnd:   "23:59:59",
		},
		{
			name:      "empty shift covers the whole day",
			shiftName: "",
			wantStart: "00:00:00",
			wantEnd:   "23:59:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveShiftWindow(tt.shiftName, day, testLoc)

			assert.Equal(t, tt.wantStart, start.Format("15:04:05"))
			assert.Equal(t, tt.wantEnd, end.Format("15:04:05"))
			assert.Equal(t, "2024-03-15", start.Format("2006-01-02"))
			assert.Equal(t, "2024-03-15", end.Format("2006-01-02"))
			assert.Equal(t, testLoc, start.Location())
			assert.Equal(t, testLoc, end.Location())
		})
	}
}

func TestResolveShiftWindowIsDeterministic(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	s1, e1 := ResolveShiftWindow("general", day, testLoc)
	s2, e2 := ResolveShiftWindow("general", day, testLoc)

	assert.True(t, s1.Equal(s2))
	assert.True(t, e1.Equal(e2))
}
