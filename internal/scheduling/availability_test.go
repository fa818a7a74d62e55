package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookableDates_SkipsWeekends(t *testing.T) {
	// Wednesday 2024-01-10
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	dates := BookableDates(today, 5)

	// Wed, Thu, Fri bookable; Sat and Sun dropped
	assert.Equal(t, []string{"2024-01-10", "2024-01-11", "2024-01-12"}, dates)
}

func TestBookableDates_StartsTodayAndStaysAscending(t *testing.T) {
	// Monday 2024-01-08
	today := time.Date(2024, 1, 8, 15, 30, 0, 0, time.UTC)

	dates := BookableDates(today, DefaultHorizonDays)

	require.NotEmpty(t, dates)
	assert.Equal(t, "2024-01-08", dates[0])

	// 30 calendar days spanning 4 full weekends
	assert.Len(t, dates, 22)

	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
	}
	for _, d := range dates {
		day, err := time.Parse(DateLayout, d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestBookableDates_WeekendStartExcludesToday(t *testing.T) {
	// Saturday 2024-01-13
	today := time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC)

	dates := BookableDates(today, 3)

	assert.Equal(t, []string{"2024-01-15"}, dates)
}

func TestBookableDates_NonPositiveHorizon(t *testing.T) {
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{}, BookableDates(today, 0))
	assert.Equal(t, []string{}, BookableDates(today, -5))

	// A degenerate horizon makes nothing bookable either
	assert.False(t, IsBookableDate("2024-01-10", today, -5))
}

func TestAvailableTimes_FutureDateGetsFullSchedule(t *testing.T) {
	now := time.Date(2024, 1, 10, 16, 45, 0, 0, time.UTC)

	times := AvailableTimes("2024-01-11", now, DefaultBufferMinutes)

	assert.Equal(t, DailySlots, times)

	// The returned slice is a copy, not an alias of the schedule
	times[0] = "mutated"
	assert.Equal(t, "08:00", DailySlots[0])
}

func TestAvailableTimes_TodayAppliesBuffer(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{
			name: "early morning keeps everything",
			now:  time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC),
			want: []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"},
		},
		{
			name: "mid morning drops elapsed and buffered slots",
			now:  time.Date(2024, 1, 10, 9, 45, 0, 0, time.UTC),
			want: []string{"11:00", "14:00", "15:00", "16:00", "17:00"},
		},
		{
			name: "slot exactly at buffer boundary is dropped",
			now:  time.Date(2024, 1, 10, 13, 30, 0, 0, time.UTC),
			want: []string{"15:00", "16:00", "17:00"},
		},
		{
			name: "late afternoon leaves nothing",
			now:  time.Date(2024, 1, 10, 16, 45, 0, 0, time.UTC),
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := AvailableTimes("2024-01-10", tt.now, DefaultBufferMinutes)
			assert.Equal(t, tt.want, times)
		})
	}
}

func TestAvailableTimes_EmptyDate(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Empty(t, AvailableTimes("", now, DefaultBufferMinutes))
}

func TestIsBookableDate(t *testing.T) {
	// Wednesday 2024-01-10
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, IsBookableDate("2024-01-10", today, DefaultHorizonDays))
	assert.True(t, IsBookableDate("2024-01-12", today, DefaultHorizonDays))
	// Saturday inside the horizon
	assert.False(t, IsBookableDate("2024-01-13", today, DefaultHorizonDays))
	// Before today
	assert.False(t, IsBookableDate("2024-01-09", today, DefaultHorizonDays))
	// Past the horizon
	assert.False(t, IsBookableDate("2024-03-01", today, DefaultHorizonDays))
	// Garbage never matches
	assert.False(t, IsBookableDate("not-a-date", today, DefaultHorizonDays))
}
