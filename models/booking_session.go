package models

import "time"

// Session phases. A session never returns to PhaseForm once successful;
// the only way back is closing the widget and opening a fresh session.
const (
	PhaseForm    = "form"
	PhaseSuccess = "success"
)

// CalendarSelection is the ephemeral calendar state of one widget opening.
// SelectedTime is only meaningful while SelectedDate is set; changing the
// date always clears the time.
type CalendarSelection struct {
	ViewedYear   int    `json:"viewedYear"`
	ViewedMonth  int    `json:"viewedMonth"` // 1..12
	SelectedDate string `json:"selectedDate,omitempty"`
	SelectedTime string `json:"selectedTime,omitempty"`
}

// BookingSession holds all state of one booking widget opening.
type BookingSession struct {
	SessionID    string               `json:"sessionId"`
	Phase        string               `json:"phase"`
	Form         BookingForm          `json:"form"`
	Calendar     CalendarSelection    `json:"calendar"`
	Confirmation *BookingConfirmation `json:"confirmation,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}
