package availability

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monday = "2026-10-19"

func mondayHours() *BusinessHours {
	return &BusinessHours{
		DayOfWeek: time.Monday,
		OpenTime:  MustParseTimeOfDay("09:00"),
		CloseTime: MustParseTimeOfDay("17:00"),
	}
}

func at(date, clock string) time.Time {
	t, err := time.ParseInLocation(DateLayout+" 15:04", date+" "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func confirmed(start, end string) ExistingAppointment {
	return ExistingAppointment{
		Date:      monday,
		StartTime: MustParseTimeOfDay(start),
		EndTime:   MustParseTimeOfDay(end),
		Status:    StatusConfirmed,
	}
}

func starts(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime.String())
	}
	return out
}

func bothStrategies(t *testing.T, fn func(t *testing.T, strategy Strategy)) {
	for _, s := range []Strategy{StrategyGrid, StrategyOverlap} {
		t.Run(string(s), func(t *testing.T) { fn(t, s) })
	}
}

func TestComputeAvailableSlots_SingleAppointmentScenario(t *testing.T) {
	bothStrategies(t, func(t *testing.T, strategy Strategy) {
		slots := ComputeAvailableSlots(SlotRequest{
			Date:                 monday,
			DurationMinutes:      30,
			BusinessHours:        mondayHours(),
			ExistingAppointments: []ExistingAppointment{confirmed("10:00", "10:30")},
			Now:                  at(monday, "00:00"),
			Strategy:             strategy,
		})

		got := starts(slots)
		require.Len(t, got, 80)
		assert.Equal(t, "09:00", got[0])
		assert.Equal(t, "09:30", got[6])
		assert.Equal(t, "10:30", got[7])
		assert.Equal(t, "16:30", got[len(got)-1])
		for _, excluded := range []string{"09:35", "09:45", "10:00", "10:25", "16:35"} {
			assert.NotContains(t, got, excluded)
		}
		for _, s := range slots {
			assert.True(t, s.IsAvailable)
		}
	})
}

func TestComputeAvailableSlots_FullyBooked(t *testing.T) {
	bothStrategies(t, func(t *testing.T, strategy Strategy) {
		for _, duration := range []int{5, 30, 90, 480} {
			slots := ComputeAvailableSlots(SlotRequest{
				Date:                 monday,
				DurationMinutes:      duration,
				BusinessHours:        mondayHours(),
				ExistingAppointments: []ExistingAppointment{confirmed("09:00", "17:00")},
				Now:                  at(monday, "00:00"),
				Strategy:             strategy,
			})
			assert.Empty(t, slots, "duration %d", duration)
		}
	})
}

func TestComputeAvailableSlots_DegradesToEmpty(t *testing.T) {
	inverted := mondayHours()
	inverted.OpenTime, inverted.CloseTime = inverted.CloseTime, inverted.OpenTime
	closed := mondayHours()
	closed.IsClosed = true
	tuesday := mondayHours()
	tuesday.DayOfWeek = time.Tuesday

	cases := []struct {
		name string
		req  SlotRequest
	}{
		{"zero duration", SlotRequest{Date: monday, DurationMinutes: 0, BusinessHours: mondayHours()}},
		{"negative duration", SlotRequest{Date: monday, DurationMinutes: -30, BusinessHours: mondayHours()}},
		{"missing hours", SlotRequest{Date: monday, DurationMinutes: 30}},
		{"closed day", SlotRequest{Date: monday, DurationMinutes: 30, BusinessHours: closed,
			ExistingAppointments: []ExistingAppointment{confirmed("10:00", "10:30")}}},
		{"inverted hours", SlotRequest{Date: monday, DurationMinutes: 30, BusinessHours: inverted}},
		{"hours for another weekday", SlotRequest{Date: monday, DurationMinutes: 30, BusinessHours: tuesday}},
		{"unparseable date", SlotRequest{Date: "2026-13-40", DurationMinutes: 30, BusinessHours: mondayHours()}},
		{"empty date", SlotRequest{Date: "", DurationMinutes: 30, BusinessHours: mondayHours()}},
		{"duration longer than window", SlotRequest{Date: monday, DurationMinutes: 481, BusinessHours: mondayHours()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Now = at(monday, "00:00")
			slots := ComputeAvailableSlots(tc.req)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestComputeAvailableSlots_BoundaryAtClose(t *testing.T) {
	slots := ComputeAvailableSlots(SlotRequest{
		Date:            monday,
		DurationMinutes: 45,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "00:00"),
	})
	require.NotEmpty(t, slots)
	closes := mondayHours().CloseTime
	last := slots[len(slots)-1]
	assert.Equal(t, "16:15", last.StartTime.String())
	for _, s := range slots {
		assert.LessOrEqual(t, int(s.StartTime.Add(45)), int(closes))
	}
}

func TestComputeAvailableSlots_ExactFitWindow(t *testing.T) {
	slots := ComputeAvailableSlots(SlotRequest{
		Date:            monday,
		DurationMinutes: 480,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "00:00"),
	})
	assert.Equal(t, []string{"09:00"}, starts(slots))
}

func TestComputeAvailableSlots_PastTimeExclusion(t *testing.T) {
	now := at(monday, "12:02")

	today := ComputeAvailableSlots(SlotRequest{
		Date:            monday,
		DurationMinutes: 30,
		BusinessHours:   mondayHours(),
		Now:             now,
	})
	require.NotEmpty(t, today)
	assert.Equal(t, "12:05", today[0].StartTime.String())
	for _, s := range today {
		assert.GreaterOrEqual(t, int(s.StartTime), int(NewTimeOfDay(12, 2)))
	}

	tuesdayHours := mondayHours()
	tuesdayHours.DayOfWeek = time.Tuesday
	tomorrow := ComputeAvailableSlots(SlotRequest{
		Date:            "2026-10-20",
		DurationMinutes: 30,
		BusinessHours:   tuesdayHours,
		Now:             now,
	})
	assert.Len(t, tomorrow, 91)
	assert.Equal(t, "09:00", tomorrow[0].StartTime.String())

	sundayHours := mondayHours()
	sundayHours.DayOfWeek = time.Sunday
	yesterday := ComputeAvailableSlots(SlotRequest{
		Date:            "2026-10-18",
		DurationMinutes: 30,
		BusinessHours:   sundayHours,
		Now:             now,
	})
	assert.Empty(t, yesterday)
}

func TestComputeAvailableSlots_StartAtNowIsKept(t *testing.T) {
	slots := ComputeAvailableSlots(SlotRequest{
		Date:            monday,
		DurationMinutes: 30,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "16:30"),
	})
	assert.Equal(t, []string{"16:30"}, starts(slots))
}

func TestComputeAvailableSlots_NowLocationDecidesTheDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 06:30 UTC is 09:30 in the salon's zone.
	now := time.Date(2026, 10, 19, 6, 30, 0, 0, time.UTC).In(loc)
	slots := ComputeAvailableSlots(SlotRequest{
		Date:            monday,
		DurationMinutes: 30,
		BusinessHours:   mondayHours(),
		Now:             now,
	})
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:30", slots[0].StartTime.String())
}

func TestComputeAvailableSlots_NonBlockingStatuses(t *testing.T) {
	base := SlotRequest{
		Date:            monday,
		DurationMinutes: 30,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "00:00"),
	}
	bothStrategies(t, func(t *testing.T, strategy Strategy) {
		base.Strategy = strategy
		without := ComputeAvailableSlots(base)
		for _, status := range []AppointmentStatus{StatusCancelled, StatusCompleted} {
			req := base
			apt := confirmed("10:00", "12:00")
			apt.Status = status
			req.ExistingAppointments = []ExistingAppointment{apt}
			assert.Equal(t, without, ComputeAvailableSlots(req), "status %s", status)
		}

		req := base
		pending := confirmed("10:00", "12:00")
		pending.Status = StatusPending
		req.ExistingAppointments = []ExistingAppointment{pending}
		assert.Less(t, len(ComputeAvailableSlots(req)), len(without))
	})
}

func TestComputeAvailableSlots_CustomGranularity(t *testing.T) {
	slots := ComputeAvailableSlots(SlotRequest{
		Date:            monday,
		DurationMinutes: 60,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "00:00"),
		Granularity:     30,
		ExistingAppointments: []ExistingAppointment{
			confirmed("12:00", "13:00"),
		},
	})
	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
	}, starts(slots))
}

func TestComputeAvailableSlots_MisalignedAppointmentStillBlocks(t *testing.T) {
	bothStrategies(t, func(t *testing.T, strategy Strategy) {
		slots := ComputeAvailableSlots(SlotRequest{
			Date:                 monday,
			DurationMinutes:      30,
			BusinessHours:        mondayHours(),
			Now:                  at(monday, "00:00"),
			ExistingAppointments: []ExistingAppointment{confirmed("10:02", "10:28")},
			Strategy:             strategy,
		})
		got := starts(slots)
		assert.Contains(t, got, "09:30")
		assert.NotContains(t, got, "09:35")
		assert.NotContains(t, got, "10:25")
		assert.Contains(t, got, "10:30")
	})
}

func TestComputeAvailableSlots_InvertedAppointmentIgnored(t *testing.T) {
	req := SlotRequest{
		Date:            monday,
		DurationMinutes: 30,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "00:00"),
	}
	without := ComputeAvailableSlots(req)
	req.ExistingAppointments = []ExistingAppointment{confirmed("11:00", "10:00")}
	assert.Equal(t, without, ComputeAvailableSlots(req))
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	req := SlotRequest{
		Date:            monday,
		DurationMinutes: 25,
		BusinessHours:   mondayHours(),
		Now:             at(monday, "10:17"),
		ExistingAppointments: []ExistingAppointment{
			confirmed("11:00", "11:45"),
			confirmed("14:10", "15:00"),
		},
	}
	assert.Equal(t, ComputeAvailableSlots(req), ComputeAvailableSlots(req))
}

// randomDay builds a request whose times all sit on the 5-minute grid.
func randomDay(r *rand.Rand) SlotRequest {
	opens := NewTimeOfDay(6+r.Intn(5), 5*r.Intn(12))
	closes := opens.Add(60 + 5*r.Intn(120))
	var apts []ExistingAppointment
	statuses := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	n := r.Intn(6)
	for i := 0; i < n; i++ {
		start := opens.Add(5*r.Intn(140) - 60)
		apts = append(apts, ExistingAppointment{
			Date:      monday,
			StartTime: start,
			EndTime:   start.Add(5 + 5*r.Intn(24)),
			Status:    statuses[r.Intn(len(statuses))],
		})
	}
	return SlotRequest{
		Date:                 monday,
		DurationMinutes:      5 + r.Intn(120),
		BusinessHours:        &BusinessHours{DayOfWeek: time.Monday, OpenTime: opens, CloseTime: closes},
		ExistingAppointments: apts,
		Now:                  at(monday, NewTimeOfDay(r.Intn(14), 5*r.Intn(12)).String()),
	}
}

func TestComputeAvailableSlots_StrategiesAgreeOnGridInputs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		req := randomDay(r)
		req.Strategy = StrategyGrid
		grid := ComputeAvailableSlots(req)
		req.Strategy = StrategyOverlap
		overlap := ComputeAvailableSlots(req)
		require.Equal(t, overlap, grid, "iteration %d: %+v", i, req)
	}
}

func TestComputeAvailableSlots_StrategiesAgreeOffGrid(t *testing.T) {
	r := rand.New(rand.NewSource(1019))
	for i := 0; i < 1000; i++ {
		req := randomDay(r)
		req.Granularity = 1 + r.Intn(30)
		req.DurationMinutes = 1 + r.Intn(150)
		req.BusinessHours.OpenTime += TimeOfDay(r.Intn(5))
		for j := range req.ExistingAppointments {
			req.ExistingAppointments[j].StartTime += TimeOfDay(r.Intn(5))
			req.ExistingAppointments[j].EndTime += TimeOfDay(r.Intn(5))
		}
		req.Strategy = StrategyGrid
		grid := ComputeAvailableSlots(req)
		req.Strategy = StrategyOverlap
		overlap := ComputeAvailableSlots(req)
		require.Equal(t, overlap, grid, "iteration %d: %+v", i, req)
	}
}

func TestComputeAvailableSlots_OffGridAppointmentBlocksOnlyItsMinutes(t *testing.T) {
	bothStrategies(t, func(t *testing.T, strategy Strategy) {
		slots := ComputeAvailableSlots(SlotRequest{
			Date:                 monday,
			DurationMinutes:      32,
			BusinessHours:        mondayHours(),
			Now:                  at(monday, "00:00"),
			ExistingAppointments: []ExistingAppointment{confirmed("10:03", "10:33")},
			Strategy:             strategy,
		})
		got := starts(slots)
		// 09:30-10:02 ends before 10:03.
		assert.Contains(t, got, "09:30")
		assert.NotContains(t, got, "09:35")
		assert.NotContains(t, got, "10:30")
		assert.Contains(t, got, "10:35")
	})
}

func TestComputeAvailableSlots_NoSlotOverlapsBlockingAppointment(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		req := randomDay(r)
		// Knock appointments off the grid to exercise the conservative marking.
		for j := range req.ExistingAppointments {
			req.ExistingAppointments[j].StartTime += TimeOfDay(r.Intn(5))
			req.ExistingAppointments[j].EndTime += TimeOfDay(r.Intn(5))
		}
		for _, strategy := range []Strategy{StrategyGrid, StrategyOverlap} {
			req.Strategy = strategy
			slots := ComputeAvailableSlots(req)
			for k, s := range slots {
				if k > 0 {
					require.Greater(t, s.StartTime, slots[k-1].StartTime)
				}
				end := s.StartTime.Add(req.DurationMinutes)
				require.LessOrEqual(t, end, req.BusinessHours.CloseTime)
				for _, apt := range req.ExistingAppointments {
					if apt.Status.Blocking() {
						require.False(t, Overlaps(s.StartTime, end, apt.StartTime, apt.EndTime),
							"%s slot %s overlaps %s-%s", strategy, s.StartTime, apt.StartTime, apt.EndTime)
					}
				}
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	tod := MustParseTimeOfDay
	assert.True(t, Overlaps(tod("10:00"), tod("10:30"), tod("10:15"), tod("10:45")))
	assert.False(t, Overlaps(tod("10:00"), tod("10:30"), tod("10:30"), tod("11:00")))
	assert.False(t, Overlaps(tod("10:30"), tod("11:00"), tod("10:00"), tod("10:30")))
	assert.True(t, Overlaps(tod("09:00"), tod("17:00"), tod("12:00"), tod("12:05")))
	assert.False(t, Overlaps(tod("10:00"), tod("10:00"), tod("09:00"), tod("11:00")))
}
