package models

// ReminderPayload is the body of a scheduled appointment reminder task.
type ReminderPayload struct {
	TicketID    string `json:"ticketId"`
	ClientID    string `json:"clientId"`
	PartnerName string `json:"partnerName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}
