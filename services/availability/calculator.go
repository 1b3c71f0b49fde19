package availability

import "time"

// ComputeAvailableSlots returns, in ascending order, every start time on
// req.Date at which a service of req.DurationMinutes fits inside the business
// hours without touching a pending or confirmed appointment and without
// starting before req.Now.
//
// Malformed input (unparseable date, non-positive duration, missing, closed or
// inverted hours, hours for another weekday) yields an empty result.
func ComputeAvailableSlots(req SlotRequest) []TimeSlot {
	day, ok := requestDay(req)
	if !ok {
		return []TimeSlot{}
	}

	step := req.Granularity
	if step <= 0 {
		step = DefaultGranularity
	}
	opens, closes := req.BusinessHours.OpenTime, req.BusinessHours.CloseTime
	lastStart := closes.Add(-req.DurationMinutes)

	var fits func(TimeOfDay) bool
	switch req.Strategy {
	case StrategyOverlap:
		fits = overlapFits(req.ExistingAppointments, req.DurationMinutes)
	default:
		fits = gridFits(bookedMinutes(req.ExistingAppointments, opens, closes), opens, req.DurationMinutes)
	}

	slots := []TimeSlot{}
	for t := opens; t <= lastStart; t = t.Add(step) {
		if slotInstant(day, t).Before(req.Now) {
			continue
		}
		if !fits(t) {
			continue
		}
		slots = append(slots, TimeSlot{StartTime: t, IsAvailable: true})
	}
	return slots
}

// requestDay validates req and returns the calendar day at midnight in the
// location of req.Now.
func requestDay(req SlotRequest) (time.Time, bool) {
	if req.DurationMinutes <= 0 || !req.BusinessHours.Open() {
		return time.Time{}, false
	}
	loc := req.Now.Location()
	day, err := time.ParseInLocation(DateLayout, req.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	if day.Weekday() != req.BusinessHours.DayOfWeek {
		return time.Time{}, false
	}
	return day, true
}

func slotInstant(day time.Time, t TimeOfDay) time.Time {
	return t.On(day)
}

// bookedMinutes marks every minute of [opens, closes) covered by a blocking
// appointment's [start, end) interval. The result is a running count:
// booked[i] is the number of occupied minutes in [opens, opens+i).
func bookedMinutes(appointments []ExistingAppointment, opens, closes TimeOfDay) []int {
	width := int(closes - opens)
	occupied := make([]bool, width)
	for _, apt := range appointments {
		if !apt.Status.Blocking() || apt.StartTime >= apt.EndTime {
			continue
		}
		from, to := apt.StartTime, apt.EndTime
		if from < opens {
			from = opens
		}
		if to > closes {
			to = closes
		}
		for m := from; m < to; m++ {
			occupied[m-opens] = true
		}
	}

	booked := make([]int, width+1)
	for i, taken := range occupied {
		booked[i+1] = booked[i]
		if taken {
			booked[i+1]++
		}
	}
	return booked
}

// gridFits reports a candidate free when no minute of [t, t+duration) is booked.
// Candidates always lie inside [opens, closes-duration].
func gridFits(booked []int, opens TimeOfDay, duration int) func(TimeOfDay) bool {
	return func(t TimeOfDay) bool {
		from := int(t - opens)
		return booked[from+duration]-booked[from] == 0
	}
}

func overlapFits(appointments []ExistingAppointment, duration int) func(TimeOfDay) bool {
	return func(t TimeOfDay) bool {
		end := t.Add(duration)
		for _, apt := range appointments {
			if apt.Status.Blocking() && Overlaps(t, end, apt.StartTime, apt.EndTime) {
				return false
			}
		}
		return true
	}
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Empty or inverted intervals never overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	if aStart >= aEnd || bStart >= bEnd {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}
