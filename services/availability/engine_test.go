package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestEnumerateBookableDays(t *testing.T) {
	tests := []struct {
		name         string
		cursor       CalendarCursor
		now          time.Time
		wantFirst    int
		wantLast     int
		wantFirstDow string
	}{
		{
			name:         "future month starts at day 1",
			cursor:       CalendarCursor{Year: 2025, Month: 11}, // December
			now:          at(2025, time.November, 15, 9, 0),
			wantFirst:    1,
			wantLast:     31,
			wantFirstDow: "LUN", // 2025-12-01 is a Monday
		},
		{
			name:         "current month starts at today",
			cursor:       CalendarCursor{Year: 2025, Month: 8}, // September, 30 days
			now:          at(2025, time.September, 28, 9, 0),
			wantFirst:    28,
			wantLast:     30,
			wantFirstDow: "DOM", // 2025-09-28 is a Sunday
		},
		{
			name:         "first of current month keeps whole month",
			cursor:       CalendarCursor{Year: 2025, Month: 5}, // June
			now:          at(2025, time.June, 1, 0, 0),
			wantFirst:    1,
			wantLast:     30,
			wantFirstDow: "DOM", // 2025-06-01 is a Sunday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := EnumerateBookableDays(tt.cursor, tt.now)
			require.NotEmpty(t, days)

			assert.Equal(t, tt.wantFirst, days[0].Day)
			assert.Equal(t, tt.wantLast, days[len(days)-1].Day)
			assert.Equal(t, tt.wantFirstDow, days[0].Weekday)
			assert.Len(t, days, tt.wantLast-tt.wantFirst+1)

			// Days are contiguous ascending.
			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].Day+1, days[i].Day)
			}
		})
	}
}

// Weekday labels must advance through the Monday-first cycle in lockstep
// with the day numbers.
func TestEnumerateBookableDaysWeekdayCycle(t *testing.T) {
	now := at(2025, time.June, 1, 8, 0)
	days := EnumerateBookableDays(CalendarCursor{Year: 2025, Month: 5}, now)
	require.NotEmpty(t, days)

	indexOf := func(label string) int {
		for i, n := range DayNames {
			if n == label {
				return i
			}
		}
		t.Fatalf("unknown weekday label %q", label)
		return -1
	}

	for i := 1; i < len(days); i++ {
		prev, cur := indexOf(days[i-1].Weekday), indexOf(days[i].Weekday)
		assert.Equal(t, (prev+1)%7, cur,
			"day %d -> %d weekday should advance by one", days[i-1].Day, days[i].Day)
	}
}

func TestFilterBookableSlotsTodayCutoff(t *testing.T) {
	// 10:15 AM today: everything up to 10:00 AM has passed, 10:30 AM onward
	// is still bookable.
	now := at(2025, time.June, 10, 10, 15)
	cursor := CursorOf(now)
	day := &DayCandidate{Day: 10, Weekday: "MAR"}

	got := FilterBookableSlots(day, cursor, nil, now)

	want := []string{
		"10:30 AM", "12:00 PM", "12:30 PM", "01:30 PM",
		"02:00 PM", "03:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
	}
	assert.Equal(t, want, got)
}

func TestFilterBookableSlotsCutoffBoundaryInclusive(t *testing.T) {
	// A slot starting exactly at the current minute is already gone.
	now := at(2025, time.June, 10, 12, 0)
	cursor := CursorOf(now)
	day := &DayCandidate{Day: 10, Weekday: "MAR"}

	got := FilterBookableSlots(day, cursor, nil, now)

	assert.NotContains(t, got, "12:00 PM")
	assert.Contains(t, got, "12:30 PM")
}

func TestFilterBookableSlotsOccupiedExclusion(t *testing.T) {
	now := at(2025, time.June, 10, 8, 0)
	cursor := CursorOf(now)
	day := &DayCandidate{Day: 25, Weekday: "MIÉ"}
	occupied := NormalizeOccupied([]string{"9:00 AM", "02:00 PM"})

	got := FilterBookableSlots(day, cursor, occupied, now)

	assert.NotContains(t, got, "09:00 AM")
	assert.NotContains(t, got, "02:00 PM")
	assert.Len(t, got, len(SlotCatalog)-2)

	// Catalog order is preserved for the survivors.
	j := 0
	for _, slot := range SlotCatalog {
		if occupied.Contains(slot) {
			continue
		}
		assert.Equal(t, slot, got[j])
		j++
	}
}

func TestFilterBookableSlotsFutureDayIgnoresClock(t *testing.T) {
	now := at(2025, time.June, 10, 17, 45) // after the last catalog slot
	cursor := CursorOf(now)
	day := &DayCandidate{Day: 11, Weekday: "MIÉ"}

	got := FilterBookableSlots(day, cursor, nil, now)
	assert.Equal(t, SlotCatalog, got)
}

func TestFilterBookableSlotsNoDaySelected(t *testing.T) {
	// With no day selected only the occupied rule applies, even late in the
	// day. The no-selection state deliberately skips the today cutoff.
	now := at(2025, time.June, 10, 17, 45)
	cursor := CursorOf(now)
	occupied := NormalizeOccupied([]string{"12:00 PM"})

	got := FilterBookableSlots(nil, cursor, occupied, now)

	assert.Len(t, got, len(SlotCatalog)-1)
	assert.NotContains(t, got, "12:00 PM")
	assert.Contains(t, got, "09:00 AM")
}

func TestNormalizeOccupied(t *testing.T) {
	got := NormalizeOccupied([]string{"9:00 AM", "02:00 PM"})

	assert.Equal(t, OccupiedSet{
		"09:00 AM": {},
		"02:00 PM": {},
	}, got)
}

func TestNormalizeOccupiedIdempotent(t *testing.T) {
	raw := []string{"9:00 AM", "9:30 AM", "02:00 PM", "02:00 PM"}
	once := NormalizeOccupied(raw)

	var flat []string
	for s := range once {
		flat = append(flat, s)
	}
	assert.Equal(t, once, NormalizeOccupied(flat))
}

func TestSlotToMinutes(t *testing.T) {
	tests := []struct {
		slot string
		want int
	}{
		{"09:00 AM", 540},
		{"10:30 AM", 630},
		{"12:00 PM", 720},
		{"12:30 PM", 750},
		{"01:30 PM", 810},
		{"05:30 PM", 1050},
		{"12:00 AM", 0},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotToMinutes(tt.slot))
		})
	}
}

func TestMonthOptions(t *testing.T) {
	opts := MonthOptions(at(2025, time.November, 15, 9, 0))
	assert.Equal(t, []CalendarCursor{
		{Year: 2025, Month: 10},
		{Year: 2025, Month: 11},
	}, opts)

	// From January the full year is offered, still capped at December.
	opts = MonthOptions(at(2025, time.January, 2, 9, 0))
	assert.Len(t, opts, 12)
	assert.Equal(t, CalendarCursor{Year: 2025, Month: 11}, opts[len(opts)-1])
}

func TestCursorMatches(t *testing.T) {
	now := at(2025, time.June, 10, 9, 0)
	assert.True(t, CursorOf(now).Matches(now))
	assert.False(t, CalendarCursor{Year: 2025, Month: 6}.Matches(now))
	assert.False(t, CalendarCursor{Year: 2024, Month: 5}.Matches(now))
}
