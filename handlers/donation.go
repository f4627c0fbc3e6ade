package handlers

import (
	"errors"
	"net/http"

	"akshara/models"
	"akshara/services/donation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DonationHandler accepts donation intents. No payment is processed.
type DonationHandler struct {
	Service donation.DonationService
	Logger  *zap.Logger
}

// NewDonationHandler builds a DonationHandler.
func NewDonationHandler(svc donation.DonationService, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{Service: svc, Logger: logger}
}

// Create acknowledges a donation intent with a receipt.
func (h *DonationHandler) Create(c *gin.Context) {
	var intent models.DonationIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	receipt, err := h.Service.Process(intent)
	if err != nil {
		if errors.Is(err, donation.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("failed to process donation intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process donation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}
