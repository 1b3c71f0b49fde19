package availability

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]TimeOfDay{
		"09:00":    540,
		"9:05":     545,
		"17:30:00": 1050,
		"00:00":    0,
		"24:00":    1440,
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "9", "25:00", "24:30", "10:60", "ab:cd", "10:00:99", "1:2:3:4"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDayFormatting(t *testing.T) {
	tod := NewTimeOfDay(7, 5)
	assert.Equal(t, "07:05", tod.String())

	b, err := json.Marshal(TimeSlot{StartTime: tod, IsAvailable: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_time":"07:05","is_available":true}`, string(b))

	var decoded TimeSlot
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, tod, decoded.StartTime)
}

func TestGroupByDayPart(t *testing.T) {
	slots := []TimeSlot{
		{StartTime: MustParseTimeOfDay("09:00"), IsAvailable: true},
		{StartTime: MustParseTimeOfDay("11:55"), IsAvailable: true},
		{StartTime: MustParseTimeOfDay("12:00"), IsAvailable: true},
		{StartTime: MustParseTimeOfDay("16:55"), IsAvailable: true},
		{StartTime: MustParseTimeOfDay("17:00"), IsAvailable: true},
		{StartTime: MustParseTimeOfDay("19:30"), IsAvailable: true},
	}
	g := GroupByDayPart(slots)
	assert.Equal(t, []string{"09:00", "11:55"}, starts(g.Morning))
	assert.Equal(t, []string{"12:00", "16:55"}, starts(g.Afternoon))
	assert.Equal(t, []string{"17:00", "19:30"}, starts(g.Evening))

	empty := GroupByDayPart(nil)
	assert.NotNil(t, empty.Morning)
	assert.Empty(t, empty.Morning)
	assert.Empty(t, empty.Afternoon)
	assert.Empty(t, empty.Evening)
}

func TestBookableDates(t *testing.T) {
	week := []BusinessHours{
		{DayOfWeek: time.Monday, OpenTime: 540, CloseTime: 1020},
		{DayOfWeek: time.Tuesday, OpenTime: 540, CloseTime: 1020},
		{DayOfWeek: time.Wednesday, OpenTime: 540, CloseTime: 1020, IsClosed: true},
		{DayOfWeek: time.Thursday, OpenTime: 1020, CloseTime: 540},
		{DayOfWeek: time.Friday, OpenTime: 540, CloseTime: 1020},
		{DayOfWeek: time.Saturday, OpenTime: 600, CloseTime: 900},
	}
	from := time.Date(2026, 10, 19, 15, 45, 0, 0, time.UTC)

	days := BookableDates(from, 8, week)
	require.Len(t, days, 8)

	disabled := map[string]bool{}
	for _, d := range days {
		disabled[d.Date] = d.Disabled
	}
	assert.Equal(t, map[string]bool{
		"2026-10-19": false, // Monday
		"2026-10-20": false,
		"2026-10-21": true, // closed
		"2026-10-22": true, // inverted hours
		"2026-10-23": false,
		"2026-10-24": false,
		"2026-10-25": true, // no Sunday record
		"2026-10-26": false,
	}, disabled)

	assert.Empty(t, BookableDates(from, 0, week))
}

func TestHoursFor(t *testing.T) {
	week := []BusinessHours{{DayOfWeek: time.Friday, OpenTime: 540, CloseTime: 1020}}
	require.NotNil(t, HoursFor(week, time.Friday))
	assert.Nil(t, HoursFor(week, time.Sunday))
	assert.False(t, HoursFor(week, time.Sunday).Open())
}

func TestParseStrategy(t *testing.T) {
	assert.Equal(t, StrategyOverlap, ParseStrategy("overlap"))
	assert.Equal(t, StrategyGrid, ParseStrategy("grid"))
	assert.Equal(t, StrategyGrid, ParseStrategy(""))
}
