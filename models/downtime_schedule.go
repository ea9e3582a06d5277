package models

import (
	"strconv"
	"strings"
	"time"
)

// DowntimeSchedule is a recurring window during which the child's device
// reports as locked. Schedule locks are transient: they never set IsLocked
// on the profile and never generate alerts.
type DowntimeSchedule struct {
	ID         uint   `json:"id" gorm:"primary_key"`
	ChildID    uint   `json:"child_id" gorm:"index"`
	StartTime  string `json:"start_time" gorm:"size:5"`  // "HH:MM"
	EndTime    string `json:"end_time" gorm:"size:5"`    // "HH:MM"
	DaysOfWeek string `json:"days_of_week" gorm:"size:13"` // "1,2,3,4,5,6,7", 1 = Monday
}

// InDowntime reports whether the given moment falls inside the window.
// Windows where the end precedes the start span midnight.
func (d DowntimeSchedule) InDowntime(now time.Time) bool {
	if !d.appliesToDay(now.Weekday()) {
		return false
	}

	start, err := parseClock(d.StartTime)
	if err != nil {
		return false
	}
	end, err := parseClock(d.EndTime)
	if err != nil {
		return false
	}
	current := now.Hour()*60 + now.Minute()

	if start <= end {
		return current >= start && current < end
	}
	// Overnight window, e.g. 21:00-07:00
	return current >= start || current < end
}

func (d DowntimeSchedule) appliesToDay(weekday time.Weekday) bool {
	// time.Weekday counts Sunday as 0, the schedule format counts Monday as 1.
	day := int(weekday)
	if day == 0 {
		day = 7
	}
	for _, part := range strings.Split(d.DaysOfWeek, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n == day {
			return true
		}
	}
	return false
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
