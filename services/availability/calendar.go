package availability

import "time"

// CalendarDay is one entry of the booking calendar.
type CalendarDay struct {
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
}

// HoursFor picks the record for weekday out of a salon's weekly hours.
// A missing record is returned as nil, which callers treat as closed.
func HoursFor(hours []BusinessHours, weekday time.Weekday) *BusinessHours {
	for i := range hours {
		if hours[i].DayOfWeek == weekday {
			return &hours[i]
		}
	}
	return nil
}

// BookableDates lists horizonDays calendar days starting at from's day. A day
// is disabled when the salon is closed or has no usable hours that weekday.
// Days are computed in from's location.
func BookableDates(from time.Time, horizonDays int, hours []BusinessHours) []CalendarDay {
	if horizonDays <= 0 {
		return []CalendarDay{}
	}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	days := make([]CalendarDay, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:     d.Format(DateLayout),
			Disabled: !HoursFor(hours, d.Weekday()).Open(),
		})
	}
	return days
}
