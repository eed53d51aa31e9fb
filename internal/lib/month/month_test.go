package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWall(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, 3, 9, 14, 30, 15, 999, loc)

	got := Wall(local)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, "2025-03-09 14:30:15", got.Format(DateTimeLayout))
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart string
		wantEnd   string
	}{
		{name: "middle of month", in: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), wantStart: "2025-03-01", wantEnd: "2025-04-01"},
		{name: "december rolls over", in: time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), wantStart: "2024-12-01", wantEnd: "2025-01-01"},
		{name: "leap february", in: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), wantStart: "2024-02-01", wantEnd: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.in)
			assert.Equal(t, tt.wantStart, start.Format(DateLayout))
			assert.Equal(t, tt.wantEnd, end.Format(DateLayout))
		})
	}
}

func TestDay(t *testing.T) {
	got := Day(time.Date(2025, 3, 15, 10, 11, 12, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestCombine(t *testing.T) {
	got, err := Combine("2025-03-15", "09:05")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15 09:05:00", got.Format(DateTimeLayout))
	assert.Equal(t, "09:05 AM", got.Format(Clock12Layout))

	got, err = Combine("2025-03-15", "21:05:30")
	require.NoError(t, err)
	assert.Equal(t, "09:05 PM", got.Format(Clock12Layout))

	_, err = Combine("15-03-2025", "09:05")
	assert.Error(t, err)
}
