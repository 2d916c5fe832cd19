package handlers

import (
	"net/http"

	"tallerlink/models"
	"tallerlink/services/partner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler serves the partner workshop directory.
type PartnerHandler struct {
	Service partner.PartnerService
}

func NewPartnerHandler(svc partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{Service: svc}
}

// GetPartnersHandler returns a list of partners.
func (h *PartnerHandler) GetPartnersHandler(c *gin.Context) {
	logger := getLogger(c)

	partners, err := h.Service.GetAllPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve partners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// SearchPartnersHandler filters partners by speciality, city or name.
func (h *PartnerHandler) SearchPartnersHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter models.PartnerSearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search filters: " + err.Error()})
		return
	}

	partners, err := h.Service.SearchPartners(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Partner search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetPartnerHandler returns details for a specific partner.
func (h *PartnerHandler) GetPartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	p, err := h.Service.GetPartnerByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Partner not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePartnerHandler creates a new partner.
func (h *PartnerHandler) CreatePartnerHandler(c *gin.Context) {
	logger := getLogger(c)

	var p models.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		logger.Error("Invalid partner creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreatePartner(c.Request.Context(), &p)
	if err != nil {
		logger.Error("Failed to create partner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePartnerHandler updates partner information.
func (h *PartnerHandler) UpdatePartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var p models.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	p.ID = id // Ensure the ID is set.

	updated, err := h.Service.UpdatePartner(c.Request.Context(), &p)
	if err != nil {
		logger.Error("Failed to update partner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePartnerHandler deletes a partner.
func (h *PartnerHandler) DeletePartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeletePartner(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete partner", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted"})
}
