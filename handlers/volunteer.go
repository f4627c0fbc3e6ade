package handlers

import (
	"net/http"

	"akshara/models"
	"akshara/services/volunteer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VolunteerHandler accepts volunteer applications from the site.
type VolunteerHandler struct {
	Service volunteer.VolunteerService
	Logger  *zap.Logger
}

// NewVolunteerHandler builds a VolunteerHandler.
func NewVolunteerHandler(svc volunteer.VolunteerService, logger *zap.Logger) *VolunteerHandler {
	return &VolunteerHandler{Service: svc, Logger: logger}
}

// Apply forwards the application to the volunteer automation webhook.
func (h *VolunteerHandler) Apply(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Role    string `json:"role"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	h.Service.SubmitApplication(models.VolunteerApplication{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Role:    input.Role,
		Message: input.Message,
	})

	h.Logger.Info("volunteer application received", zap.String("email", input.Email))
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
