package models

import (
	"time"

	"tallerlink/services/availability"
)

// BookingSession is the ephemeral selection state of one booking flow. It
// lives in Redis until the client confirms or the TTL expires; only the
// resulting ticket is persisted.
type BookingSession struct {
	ID            string                         `json:"id"`
	ClientID      string                         `json:"clientId"`
	PartnerID     string                         `json:"partnerId"`
	CarID         string                         `json:"carId"`
	Cursor        availability.CalendarCursor    `json:"cursor"`
	Day           *availability.DayCandidate     `json:"day,omitempty"`
	Slot          string                         `json:"slot,omitempty"`
	MonthOptions  []availability.CalendarCursor  `json:"monthOptions,omitempty"`
	BookableDays  []availability.DayCandidate    `json:"bookableDays,omitempty"`
	BookableSlots []string                       `json:"bookableSlots,omitempty"`
	CreatedAt     time.Time                      `json:"createdAt"`
	LastUpdatedAt time.Time                      `json:"lastUpdatedAt"`
}

// SelectedDate renders the session's selection as "YYYY-MM-DD", or "" when
// no day has been picked yet.
func (s *BookingSession) SelectedDate() string {
	if s.Day == nil {
		return ""
	}
	return FormatTicketDate(s.Cursor.Year, s.Cursor.Month, s.Day.Day)
}
