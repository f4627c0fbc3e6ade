package handlers

import (
	"errors"
	"net/http"

	"akshara/models"
	"akshara/services/booking"
	"akshara/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking widget lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Content content.ContentService
	Logger  *zap.Logger
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, contentSvc content.ContentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Content: contentSvc, Logger: logger}
}

// sessionView is the widget-facing projection of a session: the form, the
// calendar with its rendered month grid, and the slot panel, which stays
// empty until a date has been selected.
type sessionView struct {
	SessionID    string                      `json:"sessionId"`
	Phase        string                      `json:"phase"`
	Form         models.BookingForm          `json:"form"`
	Calendar     models.CalendarSelection    `json:"calendar"`
	Grid         booking.MonthGrid           `json:"grid"`
	Slots        []string                    `json:"slots,omitempty"`
	Confirmation *models.BookingConfirmation `json:"confirmation,omitempty"`
}

func newSessionView(s *models.BookingSession) sessionView {
	view := sessionView{
		SessionID:    s.SessionID,
		Phase:        s.Phase,
		Form:         s.Form,
		Calendar:     s.Calendar,
		Grid:         booking.BuildMonthGrid(s.Calendar.ViewedYear, s.Calendar.ViewedMonth),
		Confirmation: s.Confirmation,
	}
	if s.Calendar.SelectedDate != "" {
		view.Slots = booking.GenerateTimeSlots()
	}
	return view
}

// InitiateSession opens the widget: a fresh session plus the staff selector
// options, honoring an optional preselected staff member.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		StaffID string `json:"staffId"`
	}
	// The request body is optional; an empty open means no staff preference.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	session, err := h.Service.InitiateSession(input.StaffID)
	if err != nil {
		h.Logger.Error("failed to initiate booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open booking session"})
		return
	}

	staffOptions, err := h.Content.StaffOptions()
	if err != nil {
		h.Logger.Error("failed to load staff options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load staff options"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":      newSessionView(session),
		"staffOptions": staffOptions,
		"purposes":     models.BookingPurposes,
	})
}

// GetSession returns the current widget state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// UpdateForm applies a partial edit of the contact/meeting fields.
func (h *BookingHandler) UpdateForm(c *gin.Context) {
	var update booking.FormUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdateForm(c.Param("sessionID"), update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// NavigateMonth shifts the viewed month one step backward or forward.
func (h *BookingHandler) NavigateMonth(c *gin.Context) {
	var input struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.NavigateMonth(c.Param("sessionID"), input.Direction)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// SelectDate picks a day; any previously selected time slot is cleared.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required"`
		Day   int `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectDate(c.Param("sessionID"), input.Year, input.Month, input.Day)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// SelectTime picks one of the offered half-hour slots.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectTime(c.Param("sessionID"), input.Slot)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// Confirm submits the booking and, on success, returns the success view.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.Confirm(input.SessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// CancelSession closes the widget and discards all session state.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrDateTimeNotSelected),
		errors.Is(err, booking.ErrNoDateSelected),
		errors.Is(err, booking.ErrUnknownSlot),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrUnknownDirection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("booking session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
