package scheduling

import (
	"time"
)

const (
	// DefaultHorizonDays is how many forward calendar days are considered
	// when enumerating bookable dates.
	DefaultHorizonDays = 30

	// DefaultBufferMinutes is the minimum lead time before a same-day slot
	// can still be booked.
	DefaultBufferMinutes = 30

	// DateLayout is the ISO calendar-date form used throughout the service
	DateLayout = "2006-01-02"

	// TimeLayout is the slot label form
	TimeLayout = "15:04"
)

// DailySlots is the fixed daily appointment schedule. Order matters: it is
// the order slots are offered in.
var DailySlots = []string{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// BookableDates enumerates the ISO dates in [today, today+horizonDays) that
// fall on a weekday, ascending. A non-positive horizon yields no dates.
func BookableDates(today time.Time, horizonDays int) []string {
	if horizonDays <= 0 {
		return []string{}
	}
	dates := make([]string, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		day := today.AddDate(0, 0, i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, day.Format(DateLayout))
	}
	return dates
}

// AvailableTimes returns the daily slots still bookable on date. For any
// date other than now's calendar day the full schedule is returned. For
// today, only slots starting more than bufferMinutes after now survive.
// An empty date yields an empty result; a malformed date is treated as a
// future date and gets the full schedule.
func AvailableTimes(date string, now time.Time, bufferMinutes int) []string {
	if date == "" {
		return []string{}
	}

	if date != now.Format(DateLayout) {
		times := make([]string, len(DailySlots))
		copy(times, DailySlots)
		return times
	}

	cutoff := now.Hour()*60 + now.Minute() + bufferMinutes
	times := make([]string, 0, len(DailySlots))
	for _, slot := range DailySlots {
		if minuteOfDay(slot) > cutoff {
			times = append(times, slot)
		}
	}
	return times
}

// IsBookableDate reports whether date is within the weekday horizon
// starting at today.
func IsBookableDate(date string, today time.Time, horizonDays int) bool {
	for _, d := range BookableDates(today, horizonDays) {
		if d == date {
			return true
		}
	}
	return false
}

func minuteOfDay(slot string) int {
	t, err := time.Parse(TimeLayout, slot)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
