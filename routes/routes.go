package routes

import (
	"net/http"
	"time"

	"tallerlink/handlers"
	"tallerlink/middleware"
	"tallerlink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPartnerRoutes registers the workshop directory and its
// availability endpoints. Reads are open to authenticated clients; writes
// belong to the dashboard.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.GET("", hb.Partner.GetPartnersHandler)
		api.GET("/search", hb.Partner.SearchPartnersHandler)
		api.GET("/id/:id", hb.Partner.GetPartnerHandler)

		// Availability queries behind the calendar and map screens.
		api.GET("/id/:id/availability/days", hb.Availability.GetBookableDaysHandler)
		api.GET("/id/:id/availability/slots", hb.Availability.GetBookableSlotsHandler)
		api.GET("/id/:id/availability/occupied", hb.Availability.GetOccupiedTimesHandler)

		// Directory management requires a dashboard token plus permission.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.Use(middleware.RequirePermission(hb.AdminSvc, "partners.manage"))
		protected.POST("", hb.Partner.CreatePartnerHandler)
		protected.PATCH("/update/:id", hb.Partner.UpdatePartnerHandler)
		protected.DELETE("/delete/:id", hb.Partner.DeletePartnerHandler)
	}

	r.GET("/api/availability/months", hb.Availability.GetMonthOptionsHandler)
}

// RegisterBookingRoutes sets up the endpoints for the booking session flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthClientMiddleware())
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		bookingGroup.POST("/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterClientRoutes registers the authenticated client's profile, cars
// and ticket list.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients/me")
	{
		api.Use(middleware.JWTAuthClientMiddleware())
		api.GET("", hb.Car.GetProfileHandler)
		api.GET("/tickets", hb.Ticket.GetMyTicketsHandler)

		api.GET("/cars", hb.Car.ListCarsHandler)
		api.POST("/cars", hb.Car.CreateCarHandler)
		api.PUT("/cars/:carID", hb.Car.UpdateCarHandler)
		api.DELETE("/cars/:carID", hb.Car.DeleteCarHandler)
	}
}

// RegisterAdminRoutes sets up dashboard endpoints: ticket management, user
// and role administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthAdminMiddleware())

	tickets := adminGroup.Group("/tickets")
	{
		tickets.Use(middleware.RequirePermission(hb.AdminSvc, "tickets.manage"))
		tickets.GET("", hb.Ticket.GetTicketsHandler)
		tickets.GET("/:id", hb.Ticket.GetTicketHandler)
		tickets.PATCH("/:id/status", hb.Ticket.UpdateTicketStatusHandler)
		tickets.DELETE("/:id", hb.Ticket.DeleteTicketHandler)
	}
	adminGroup.GET("/partners/:id/tickets",
		middleware.RequirePermission(hb.AdminSvc, "tickets.manage"),
		hb.Ticket.GetPartnerTicketsHandler)

	access := adminGroup.Group("")
	{
		access.Use(middleware.RequirePermission(hb.AdminSvc, "admin.manage"))
		access.POST("/users", hb.Admin.CreateUserHandler)
		access.GET("/users", hb.Admin.GetUsersHandler)
		access.PUT("/users/:id", hb.Admin.UpdateUserHandler)
		access.DELETE("/users/:id", hb.Admin.DeleteUserHandler)

		access.POST("/roles", hb.Admin.CreateRoleHandler)
		access.GET("/roles", hb.Admin.GetRolesHandler)
		access.GET("/roles/:id", hb.Admin.GetRoleHandler)
		access.PUT("/roles/:id", hb.Admin.UpdateRoleHandler)
		access.DELETE("/roles/:id", hb.Admin.DeleteRoleHandler)
		access.POST("/roles/:id/permissions", hb.Admin.AssignPermissionHandler)
		access.DELETE("/roles/:id/permissions/:permissionID", hb.Admin.RevokePermissionHandler)

		access.POST("/permissions", hb.Admin.CreatePermissionHandler)
		access.GET("/permissions", hb.Admin.GetPermissionsHandler)
		access.DELETE("/permissions/:id", hb.Admin.DeletePermissionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPartnerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
