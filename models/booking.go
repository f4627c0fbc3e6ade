package models

import "time"

// Purpose options offered by the booking form. The first entry is the default.
var BookingPurposes = []string{"Partnership", "Donation", "Volunteering", "Media", "Other"}

// BookingForm collects contact details and meeting metadata for one widget opening.
// Date and Time stay empty until populated from the calendar selection at submit.
type BookingForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Purpose  string `json:"purpose"`
	StaffID  string `json:"staffId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Message  string `json:"message"`
	IsUrgent bool   `json:"isUrgent"`
}

// BookingSubmission is the JSON body posted to the automation webhook.
type BookingSubmission struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Purpose   string    `json:"purpose"`
	StaffID   string    `json:"staffId,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Message   string    `json:"message"`
	IsUrgent  bool      `json:"isUrgent"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// BookingConfirmation is what the success view renders after a submit.
type BookingConfirmation struct {
	ScheduledFor string `json:"scheduledFor"`
	Email        string `json:"email"`
}
