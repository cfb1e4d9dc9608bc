package booking

import (
	"time"

	"github.com/hadir-app/hadir-api/internal/models"
)

// WeekdayIndex maps a local time to the stored weekday convention
// (0=Monday .. 6=Sunday). time.Weekday counts from Sunday.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WithinWorkingHours reports whether [startLocal, endLocal) fits inside
// the business's slot for that weekday. Both boundaries are inclusive:
// a booking ending exactly at closing time is allowed.
//
// Only the first slot declared for a weekday is consulted; slots
// crossing midnight are not supported, the check is same-calendar-day
// containment only.
func WithinWorkingHours(startLocal, endLocal time.Time, hours []models.WorkingHours) bool {
	day := WeekdayIndex(startLocal)

	var slot *models.WorkingHours
	for i := range hours {
		if hours[i].Weekday == day {
			slot = &hours[i]
			break
		}
	}
	if slot == nil {
		return false
	}

	workStart, okStart := atClock(startLocal, slot.StartTime)
	workEnd, okEnd := atClock(startLocal, slot.EndTime)
	if !okStart || !okEnd {
		return false
	}

	return !startLocal.Before(workStart) && !endLocal.After(workEnd)
}

// atClock pins an "HH:MM" clock reading onto day's calendar date in
// day's location.
func atClock(day time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}
