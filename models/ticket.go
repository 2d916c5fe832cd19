package models

import "time"

// Ticket statuses. A ticket starts pending and is confirmed, cancelled or
// closed by the workshop through the dashboard.
const (
	TicketStatusPending   = "pending"
	TicketStatusConfirmed = "confirmed"
	TicketStatusCancelled = "cancelled"
	TicketStatusDone      = "done"
)

// Ticket is a booked appointment: one client, one car, one partner, one
// calendar date and one catalog time slot.
type Ticket struct {
	ID        string    `json:"id"`
	PartnerID string    `json:"partnerId"`
	ClientID  string    `json:"clientId"`
	CarID     string    `json:"carId"`
	Date      string    `json:"date"` // "YYYY-MM-DD"
	Time      string    `json:"time"` // catalog slot, e.g. "09:00 AM"
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidTicketStatus reports whether s is a known status value.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusPending, TicketStatusConfirmed, TicketStatusCancelled, TicketStatusDone:
		return true
	}
	return false
}
