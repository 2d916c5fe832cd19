// File: services/booking/availability.go
package booking

import (
	"context"
	"time"

	ticketRepo "tallerlink/database/repository/ticket"
	"tallerlink/models"
	"tallerlink/services/availability"
	"tallerlink/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService wires the pure availability engine to the
// ticket store acting as the occupied-slots lookup.
type DefaultAvailabilityService struct {
	TicketRepo ticketRepo.TicketRepository

	// Now is the wall clock; overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BookableDays enumerates the selectable days of the cursor month.
func (s *DefaultAvailabilityService) BookableDays(cursor availability.CalendarCursor) []availability.DayCandidate {
	return availability.EnumerateBookableDays(cursor, s.now())
}

// BookableSlots returns the catalog slots still open for the partner on the
// given day of the cursor month. With day == nil only booked slots are
// removed, matching the app's no-selection state. A failed occupied lookup
// degrades to an empty set: showing every slot and catching the conflict at
// confirm time beats showing none.
func (s *DefaultAvailabilityService) BookableSlots(ctx context.Context, partnerID string, cursor availability.CalendarCursor, day *int) ([]string, error) {
	now := s.now()

	var candidate *availability.DayCandidate
	var occupied availability.OccupiedSet
	if day != nil {
		candidate = dayCandidate(cursor, *day)
		occupied = s.fetchOccupied(ctx, partnerID, models.FormatTicketDate(cursor.Year, cursor.Month, *day))
	}

	return availability.FilterBookableSlots(candidate, cursor, occupied, now), nil
}

// OccupiedTimes exposes the raw booked times for one partner and date, as
// the mobile app consumes them.
func (s *DefaultAvailabilityService) OccupiedTimes(ctx context.Context, partnerID, date string) ([]string, error) {
	return s.TicketRepo.GetOccupiedTimes(ctx, partnerID, date)
}

func (s *DefaultAvailabilityService) fetchOccupied(ctx context.Context, partnerID, date string) availability.OccupiedSet {
	raw, err := s.TicketRepo.GetOccupiedTimes(ctx, partnerID, date)
	if err != nil {
		utils.GetLogger().Warn("occupied lookup failed, treating day as free",
			zap.String("partnerID", partnerID), zap.String("date", date), zap.Error(err))
		return nil
	}
	return availability.NormalizeOccupied(raw)
}

// dayCandidate rebuilds the DayCandidate for an arbitrary day of the cursor
// month, deriving the weekday label the same way the enumeration does.
func dayCandidate(cursor availability.CalendarCursor, day int) *availability.DayCandidate {
	firstOfMonth := time.Date(cursor.Year, time.Month(cursor.Month+1), 1, 0, 0, 0, 0, time.UTC)
	firstDayIndex := (int(firstOfMonth.Weekday()) + 6) % 7
	return &availability.DayCandidate{
		Day:     day,
		Weekday: availability.DayNames[(firstDayIndex+day-1)%7],
	}
}
