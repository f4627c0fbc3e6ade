package models

import "time"

// VolunteerApplication is a volunteer sign-up submitted from the site.
type VolunteerApplication struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

// VolunteerSubmission is the JSON body forwarded to the volunteer webhook.
type VolunteerSubmission struct {
	VolunteerApplication
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
