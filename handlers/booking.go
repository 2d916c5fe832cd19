// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"tallerlink/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the stateful booking session flow.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func bookingStatus(err error) int {
	var be *booking.BookingError
	if errors.As(err, &be) {
		switch be {
		case booking.ErrSessionNotFound:
			return http.StatusNotFound
		case booking.ErrSlotUnavailable:
			return http.StatusConflict
		case booking.ErrNoSelection, booking.ErrUnknownSlot:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// InitiateSession starts a booking session for the authenticated client.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.GetString("clientID")

	var input struct {
		PartnerID string `json:"partnerId" binding:"required"`
		CarID     string `json:"carId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), clientID, input.PartnerID, input.CarID)
	if err != nil {
		logger.Error("Failed to initiate booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate booking session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession applies a month/day/slot selection and returns the session
// with its recomputed bookable days and slots.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var update booking.SelectionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdateSelection(c.Request.Context(), sessionID, update)
	if err != nil {
		logger.Warn("Failed to update booking session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking turns the session's selection into a pending ticket.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ticket, err := h.Service.ConfirmBooking(c.Request.Context(), input.SessionID)
	if err != nil {
		logger.Warn("Failed to confirm booking", zap.String("sessionID", input.SessionID), zap.Error(err))
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// CancelSession abandons an in-flight booking session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
