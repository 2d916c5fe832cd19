package handlers

import "tallerlink/services/admin"

// HandlerBundle groups every handler for route registration.
type HandlerBundle struct {
	Partner      *PartnerHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Ticket       *TicketHandler
	Car          *CarHandler
	Admin        *AdminHandler

	// AdminSvc backs the permission middleware on dashboard routes.
	AdminSvc admin.AdminService
}
