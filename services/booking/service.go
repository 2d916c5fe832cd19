// File: services/booking/service.go
package booking

import (
	"context"
	"fmt"
	"time"

	"tallerlink/models"
	"tallerlink/services/availability"
	"tallerlink/services/tasks"
	"tallerlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession starts a booking flow for one client, partner and car. The
// session opens on the current month with its bookable days already
// enumerated, plus the month options the picker may offer (capped at
// December of the current year).
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, clientID, partnerID, carID string) (*models.BookingSession, error) {
	if _, err := s.PartnerRepo.GetByID(ctx, partnerID); err != nil {
		return nil, fmt.Errorf("partner lookup failed: %w", err)
	}

	now := s.now()
	cursor := availability.CursorOf(now)

	session := &models.BookingSession{
		ID:           uuid.New().String(),
		ClientID:     clientID,
		PartnerID:    partnerID,
		CarID:        carID,
		Cursor:       cursor,
		MonthOptions: availability.MonthOptions(now),
		BookableDays: s.Availability.BookableDays(cursor),
		CreatedAt:    now,
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSelection applies the client's month/day/slot choice and recomputes
// what remains bookable. Changing the month clears a previously chosen day;
// changing the day clears a previously chosen slot.
func (s *DefaultBookingSessionService) UpdateSelection(ctx context.Context, sessionID string, update SelectionUpdate) (*models.BookingSession, error) {
	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cursor := availability.CalendarCursor{Year: update.Year, Month: update.Month}
	if cursor != session.Cursor {
		session.Cursor = cursor
		session.Day = nil
		session.Slot = ""
	}
	session.BookableDays = s.Availability.BookableDays(cursor)

	if update.Day != nil {
		if session.Day == nil || session.Day.Day != *update.Day {
			session.Slot = ""
		}
		session.Day = dayCandidate(cursor, *update.Day)
	}

	var dayNum *int
	if session.Day != nil {
		d := session.Day.Day
		dayNum = &d
	}
	slots, err := s.Availability.BookableSlots(ctx, session.PartnerID, cursor, dayNum)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bookable slots: %w", err)
	}
	session.BookableSlots = slots

	if update.Slot != "" {
		if !availability.IsCatalogSlot(update.Slot) {
			return nil, ErrUnknownSlot
		}
		session.Slot = update.Slot
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking turns a completed selection into a pending ticket. The slot
// is re-checked against the ticket store right before the insert; the Redis
// session only ever held a snapshot.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Ticket, error) {
	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Day == nil || session.Slot == "" {
		return nil, ErrNoSelection
	}

	date := session.SelectedDate()
	taken, err := s.TicketRepo.IsSlotTaken(ctx, session.PartnerID, date, session.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to re-check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotUnavailable
	}

	ticket := &models.Ticket{
		PartnerID: session.PartnerID,
		ClientID:  session.ClientID,
		CarID:     session.CarID,
		Date:      date,
		Time:      session.Slot,
		Status:    models.TicketStatusPending,
	}
	if err := s.TicketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.scheduleReminder(ticket)

	if s.NotificationSvc != nil {
		if err := s.NotificationSvc.NotifyNewTicket(ctx, ticket); err != nil {
			utils.GetLogger().Warn("failed to notify partner of new ticket",
				zap.String("ticketID", ticket.ID), zap.Error(err))
		}
	}

	if err := s.Sessions.Drop(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to drop booking session after confirm",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return ticket, nil
}

// CancelSession abandons the flow; nothing was persisted yet.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Drop(ctx, sessionID)
}

// scheduleReminder enqueues the appointment reminder a day ahead of the
// booked time. Reminders are best effort; a scheduling failure never fails
// the booking.
func (s *DefaultBookingSessionService) scheduleReminder(ticket *models.Ticket) {
	if s.ReminderClient == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := time.Parse("2006-01-02", ticket.Date)
	if err != nil {
		logger.Warn("unparseable ticket date, skipping reminder", zap.String("date", ticket.Date))
		return
	}
	minutes := availability.SlotToMinutes(ticket.Time)
	fireAt := day.Add(time.Duration(minutes)*time.Minute - 24*time.Hour)
	if fireAt.Before(s.now()) {
		return
	}

	payload := models.ReminderPayload{
		TicketID: ticket.ID,
		ClientID: ticket.ClientID,
		Date:     ticket.Date,
		Time:     ticket.Time,
		Title:    "Recordatorio de cita",
		Body:     fmt.Sprintf("Tu cita es el %s a las %s", ticket.Date, ticket.Time),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("ticketID", ticket.ID), zap.Error(err))
		return
	}
	if _, err := s.ReminderClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder", zap.String("ticketID", ticket.ID), zap.Error(err))
	}
}
