package booking

import (
	"context"
	"time"

	partnerRepo "tallerlink/database/repository/partner"
	ticketRepo "tallerlink/database/repository/ticket"
	"tallerlink/models"
	"tallerlink/services/availability"
	"tallerlink/services/notification"

	"github.com/hibiken/asynq"
)

// AvailabilityService answers the stateless availability questions the
// mobile screens ask: which days of a month and which time slots of a day
// are still bookable for a partner.
type AvailabilityService interface {
	BookableDays(cursor availability.CalendarCursor) []availability.DayCandidate
	BookableSlots(ctx context.Context, partnerID string, cursor availability.CalendarCursor, day *int) ([]string, error)
	OccupiedTimes(ctx context.Context, partnerID, date string) ([]string, error)
}

// SelectionUpdate is the client's partial update of a booking session: a
// month to browse and optionally a day and a slot.
type SelectionUpdate struct {
	Year  int    `json:"year"`
	Month int    `json:"month"` // zero-based
	Day   *int   `json:"day,omitempty"`
	Slot  string `json:"slot,omitempty"`
}

// BookingSessionService manages the stateful booking flow from first tap to
// the persisted pending ticket.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, clientID, partnerID, carID string) (*models.BookingSession, error)
	UpdateSelection(ctx context.Context, sessionID string, update SelectionUpdate) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Ticket, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	PartnerRepo     partnerRepo.PartnerRepository
	TicketRepo      ticketRepo.TicketRepository
	Availability    AvailabilityService
	NotificationSvc notification.NotificationService
	Sessions        SessionStore
	ReminderClient  *asynq.Client

	// Now is the wall clock; overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
