package availability

// DayPart names a section of the day the client renders slots under.
type DayPart string

const (
	Morning   DayPart = "morning"
	Afternoon DayPart = "afternoon"
	Evening   DayPart = "evening"
)

var (
	noon    = NewTimeOfDay(12, 0)
	evening = NewTimeOfDay(17, 0)
)

// PartOf returns the day part a start time belongs to.
func PartOf(t TimeOfDay) DayPart {
	switch {
	case t < noon:
		return Morning
	case t < evening:
		return Afternoon
	default:
		return Evening
	}
}

// GroupedSlots holds slots split by day part, each in ascending order.
type GroupedSlots struct {
	Morning   []TimeSlot `json:"morning"`
	Afternoon []TimeSlot `json:"afternoon"`
	Evening   []TimeSlot `json:"evening"`
}

// GroupByDayPart splits slots into morning (< 12:00), afternoon (12:00 to
// 16:59) and evening (>= 17:00), preserving order.
func GroupByDayPart(slots []TimeSlot) GroupedSlots {
	g := GroupedSlots{
		Morning:   []TimeSlot{},
		Afternoon: []TimeSlot{},
		Evening:   []TimeSlot{},
	}
	for _, s := range slots {
		switch PartOf(s.StartTime) {
		case Morning:
			g.Morning = append(g.Morning, s)
		case Afternoon:
			g.Afternoon = append(g.Afternoon, s)
		default:
			g.Evening = append(g.Evening, s)
		}
	}
	return g
}
