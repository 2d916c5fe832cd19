package notification

import (
	"context"

	"tallerlink/models"
	"tallerlink/utils"

	"go.uber.org/zap"
)

// NotificationService defines the outbound messages the booking flow emits.
// Actual delivery (WhatsApp via the messaging gateway) happens outside this
// backend; implementations here only hand the message over.
type NotificationService interface {
	NotifyNewTicket(ctx context.Context, ticket *models.Ticket) error
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService records notifications in the application log. It is
// the default implementation and the one used wherever the gateway is not
// configured.
type LogNotificationService struct{}

func (s *LogNotificationService) NotifyNewTicket(ctx context.Context, ticket *models.Ticket) error {
	utils.GetLogger().Info("new pending ticket",
		zap.String("ticketID", ticket.ID),
		zap.String("partnerID", ticket.PartnerID),
		zap.String("date", ticket.Date),
		zap.String("time", ticket.Time))
	return nil
}

func (s *LogNotificationService) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder due",
		zap.String("ticketID", payload.TicketID),
		zap.String("clientID", payload.ClientID),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time))
	return nil
}
