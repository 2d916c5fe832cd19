// File: tallerlink/services/availability/engine.go
//
// Package availability computes which calendar days and time-of-day slots
// remain bookable for a partner workshop. It is the single source of truth
// for slot legality: the mobile appointment, appointment-edit and map flows
// all go through these functions instead of carrying their own copies of the
// rules. Everything here is pure and synchronous; callers fetch the occupied
// times first and then evaluate availability in-process.
package availability

import (
	"strconv"
	"strings"
	"time"
)

// CalendarCursor identifies the (year, month) being browsed in the date
// picker. Month is zero-based (0 = January) to match the mobile client's
// date handling; render it through MonthNames.
type CalendarCursor struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthName returns the display name for the cursor's month.
func (c CalendarCursor) MonthName() string {
	return MonthNames[c.Month]
}

// Matches reports whether the cursor points at t's month and year.
func (c CalendarCursor) Matches(t time.Time) bool {
	return c.Year == t.Year() && c.Month == int(t.Month())-1
}

// CursorOf builds the cursor for t's month.
func CursorOf(t time.Time) CalendarCursor {
	return CalendarCursor{Year: t.Year(), Month: int(t.Month()) - 1}
}

// DayCandidate is a selectable day of the cursor month together with its
// weekday label from DayNames.
type DayCandidate struct {
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
}

// OccupiedSet holds the normalized slot strings already booked for one
// partner on one calendar day. Build it with NormalizeOccupied; raw upstream
// data is inconsistent about zero-padding the hour, so membership tests
// against anything else are unsound.
type OccupiedSet map[string]struct{}

// Contains reports whether the normalized slot is occupied.
func (o OccupiedSet) Contains(slot string) bool {
	_, ok := o[slot]
	return ok
}

// EnumerateBookableDays lists the days of the cursor month that can still be
// booked, ascending. When the cursor points at the current month the list
// starts at today; for later months it starts at 1. The month picker never
// offers months past December of the current year, so no cross-year handling
// exists here.
func EnumerateBookableDays(cursor CalendarCursor, now time.Time) []DayCandidate {
	// Day 0 of the following month is the last day of the cursor month.
	daysInMonth := time.Date(cursor.Year, time.Month(cursor.Month+2), 0, 0, 0, 0, 0, time.UTC).Day()

	firstOfMonth := time.Date(cursor.Year, time.Month(cursor.Month+1), 1, 0, 0, 0, 0, time.UTC)
	// Shift the native Sunday=0 weekday to the Monday-first table.
	firstDayIndex := (int(firstOfMonth.Weekday()) + 6) % 7

	startDay := 1
	if cursor.Matches(now) {
		startDay = now.Day()
	}

	var days []DayCandidate
	for d := startDay; d <= daysInMonth; d++ {
		days = append(days, DayCandidate{
			Day:     d,
			Weekday: DayNames[(firstDayIndex+d-1)%7],
		})
	}
	return days
}

// FilterBookableSlots walks the catalog in order and drops slots that are
// occupied, plus slots whose start time has already passed when the selected
// day is today. A slot starting exactly at the current minute counts as
// passed. With no day selected (day == nil) only the occupied rule applies
// and the full remaining catalog is returned; some call sites rely on that
// permissive behavior for the no-selection state.
func FilterBookableSlots(day *DayCandidate, cursor CalendarCursor, occupied OccupiedSet, now time.Time) []string {
	isToday := day != nil && day.Day == now.Day() && cursor.Matches(now)
	nowMinutes := now.Hour()*60 + now.Minute()

	var slots []string
	for _, slot := range SlotCatalog {
		if occupied.Contains(slot) {
			continue
		}
		if isToday && SlotToMinutes(slot) <= nowMinutes {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// NormalizeOccupied repairs the zero-padding of raw booked-time strings and
// collects them into a set. A 7-character value means the hour is a single
// digit ("9:00 AM") and gets a leading zero; everything else passes through
// unchanged. Idempotent.
func NormalizeOccupied(raw []string) OccupiedSet {
	set := make(OccupiedSet, len(raw))
	for _, s := range raw {
		if len(s) == 7 {
			s = "0" + s
		}
		set[s] = struct{}{}
	}
	return set
}

// SlotToMinutes converts a catalog slot string to minutes since midnight.
// The catalog is a compile-time constant, so malformed input is a caller
// bug and is not defended against.
func SlotToMinutes(slot string) int {
	parts := strings.Split(slot, " ")
	hm := strings.Split(parts[0], ":")
	hour, _ := strconv.Atoi(hm[0])
	minute, _ := strconv.Atoi(hm[1])
	if parts[1] == "PM" && hour != 12 {
		hour += 12
	}
	if parts[1] == "AM" && hour == 12 {
		hour = 0
	}
	return hour*60 + minute
}

// MonthOptions builds the cursors offered by the month picker: the current
// month through December of the current year. January of next year is never
// offered; the horizon is capped at year end on purpose.
func MonthOptions(now time.Time) []CalendarCursor {
	var opts []CalendarCursor
	for m := int(now.Month()) - 1; m < 12; m++ {
		opts = append(opts, CalendarCursor{Year: now.Year(), Month: m})
	}
	return opts
}
