// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tallerlink/services/availability"
	"tallerlink/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the stateless availability queries behind the
// appointment, appointment-edit and map screens.
type AvailabilityHandler struct {
	Availability booking.AvailabilityService
}

func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc}
}

func parseCursor(c *gin.Context) (availability.CalendarCursor, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'year'"})
		return availability.CalendarCursor{}, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 0 || month > 11 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'month' (expected 0-11)"})
		return availability.CalendarCursor{}, false
	}
	return availability.CalendarCursor{Year: year, Month: month}, true
}

// GetMonthOptionsHandler lists the months the picker may offer: the current
// month through December of the current year.
func (h *AvailabilityHandler) GetMonthOptionsHandler(c *gin.Context) {
	options := availability.MonthOptions(time.Now())

	type monthOption struct {
		Year  int    `json:"year"`
		Month int    `json:"month"`
		Name  string `json:"name"`
	}
	out := make([]monthOption, 0, len(options))
	for _, opt := range options {
		out = append(out, monthOption{Year: opt.Year, Month: opt.Month, Name: opt.MonthName()})
	}
	c.JSON(http.StatusOK, gin.H{"months": out})
}

// GetBookableDaysHandler enumerates the selectable days of a month for a
// partner.
func (h *AvailabilityHandler) GetBookableDaysHandler(c *gin.Context) {
	cursor, ok := parseCursor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": h.Availability.BookableDays(cursor)})
}

// GetBookableSlotsHandler returns the open catalog slots for a partner on a
// day of the given month. With no 'day' parameter only booked slots are
// filtered out, mirroring the app's no-selection state.
func (h *AvailabilityHandler) GetBookableSlotsHandler(c *gin.Context) {
	logger := getLogger(c)
	partnerID := c.Param("id")

	cursor, ok := parseCursor(c)
	if !ok {
		return
	}

	var day *int
	if raw := c.Query("day"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 1 || d > 31 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'day'"})
			return
		}
		day = &d
	}

	slots, err := h.Availability.BookableSlots(c.Request.Context(), partnerID, cursor, day)
	if err != nil {
		logger.Error("Failed to compute bookable slots", zap.String("partnerID", partnerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute bookable slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetOccupiedTimesHandler exposes the raw booked times for one partner and
// date. Values come back exactly as stored; clients normalize before
// comparing.
func (h *AvailabilityHandler) GetOccupiedTimesHandler(c *gin.Context) {
	logger := getLogger(c)
	partnerID := c.Param("id")

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'date' (expected YYYY-MM-DD)"})
		return
	}

	times, err := h.Availability.OccupiedTimes(c.Request.Context(), partnerID, date)
	if err != nil {
		logger.Error("Failed to fetch occupied times", zap.String("partnerID", partnerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch occupied times"})
		return
	}
	if times == nil {
		times = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"occupied": times})
}
