package handlers

import (
	"net/http"

	clientRepo "tallerlink/database/repository/client"
	"tallerlink/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CarHandler serves the authenticated client's profile and cars.
type CarHandler struct {
	Repo clientRepo.ClientRepository
}

func NewCarHandler(repo clientRepo.ClientRepository) *CarHandler {
	return &CarHandler{Repo: repo}
}

// GetProfileHandler returns the authenticated client's record.
func (h *CarHandler) GetProfileHandler(c *gin.Context) {
	clientID := c.GetString("clientID")

	client, err := h.Repo.GetByID(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListCarsHandler lists the client's cars.
func (h *CarHandler) ListCarsHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.GetString("clientID")

	cars, err := h.Repo.ListCars(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to list cars", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cars"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

// CreateCarHandler registers a car for the client.
func (h *CarHandler) CreateCarHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.GetString("clientID")

	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	car.ClientID = clientID

	if err := h.Repo.CreateCar(c.Request.Context(), &car); err != nil {
		logger.Error("Failed to create car", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		return
	}
	c.JSON(http.StatusCreated, car)
}

// UpdateCarHandler updates one of the client's cars.
func (h *CarHandler) UpdateCarHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.GetString("clientID")
	carID := c.Param("carID")

	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	car.ID = carID
	car.ClientID = clientID

	if err := h.Repo.UpdateCar(c.Request.Context(), &car); err != nil {
		logger.Error("Failed to update car", zap.String("carID", carID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// DeleteCarHandler removes one of the client's cars.
func (h *CarHandler) DeleteCarHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.GetString("clientID")
	carID := c.Param("carID")

	if err := h.Repo.DeleteCar(c.Request.Context(), clientID, carID); err != nil {
		logger.Error("Failed to delete car", zap.String("carID", carID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted"})
}
