package handlers

import (
	"net/http"

	ticketRepo "tallerlink/database/repository/ticket"
	"tallerlink/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TicketHandler serves ticket CRUD for the dashboard and the client's own
// ticket list.
type TicketHandler struct {
	Repo ticketRepo.TicketRepository
}

func NewTicketHandler(repo ticketRepo.TicketRepository) *TicketHandler {
	return &TicketHandler{Repo: repo}
}

// GetTicketsHandler lists all tickets (dashboard view).
func (h *TicketHandler) GetTicketsHandler(c *gin.Context) {
	logger := getLogger(c)

	tickets, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve tickets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// GetTicketHandler returns one ticket by id.
func (h *TicketHandler) GetTicketHandler(c *gin.Context) {
	id := c.Param("id")

	ticket, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GetMyTicketsHandler lists the authenticated client's tickets.
func (h *TicketHandler) GetMyTicketsHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.GetString("clientID")

	tickets, err := h.Repo.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to retrieve client tickets", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// GetPartnerTicketsHandler lists a partner's tickets (dashboard view).
func (h *TicketHandler) GetPartnerTicketsHandler(c *gin.Context) {
	logger := getLogger(c)
	partnerID := c.Param("id")

	tickets, err := h.Repo.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		logger.Error("Failed to retrieve partner tickets", zap.String("partnerID", partnerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// UpdateTicketStatusHandler moves a ticket through its lifecycle.
func (h *TicketHandler) UpdateTicketStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !models.ValidTicketStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ticket status: " + input.Status})
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		logger.Error("Failed to update ticket status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ticket status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket updated"})
}

// DeleteTicketHandler removes a ticket.
func (h *TicketHandler) DeleteTicketHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete ticket", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ticket"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket deleted"})
}
