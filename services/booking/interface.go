package booking

import (
	"akshara/models"
	"akshara/services/webhook"

	"github.com/go-redis/redis/v8"
)

// FormUpdate carries a partial edit of the booking form. Nil fields are
// left untouched; each field is independently editable.
type FormUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Purpose  *string `json:"purpose"`
	StaffID  *string `json:"staffId"`
	Message  *string `json:"message"`
	IsUrgent *bool   `json:"isUrgent"`
}

// ReminderScheduler enqueues a follow-up reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(sub models.BookingSubmission) error
}

// BookingSessionService manages the stateful lifecycle of one widget opening:
// open, edit, calendar selection, submit, close.
type BookingSessionService interface {
	InitiateSession(preselectedStaffID string) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)
	UpdateForm(sessionID string, update FormUpdate) (*models.BookingSession, error)
	NavigateMonth(sessionID, direction string) (*models.BookingSession, error)
	SelectDate(sessionID string, year, month, day int) (*models.BookingSession, error)
	SelectTime(sessionID, slot string) (*models.BookingSession, error)
	Confirm(sessionID string) (*models.BookingSession, error)
	CancelSession(sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService on top of a
// Redis session store and the outbound webhook dispatcher.
type DefaultBookingSessionService struct {
	Cache      *redis.Client
	Dispatcher webhook.Dispatcher
	Reminders  ReminderScheduler
}
