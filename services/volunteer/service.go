package volunteer

import (
	"context"
	"time"

	"akshara/models"
	"akshara/services/webhook"
)

// sourceVolunteerForm tags webhook payloads from the volunteer sign-up form.
const sourceVolunteerForm = "website_volunteer_form"

// VolunteerService forwards volunteer applications to the automation webhook.
type VolunteerService interface {
	SubmitApplication(app models.VolunteerApplication) bool
}

// DefaultVolunteerService implements VolunteerService.
type DefaultVolunteerService struct {
	Dispatcher webhook.Dispatcher
}

// SubmitApplication stamps and forwards the application. Same fire-and-forget
// posture as the booking submission: the caller always sees success.
func (s *DefaultVolunteerService) SubmitApplication(app models.VolunteerApplication) bool {
	submission := models.VolunteerSubmission{
		VolunteerApplication: app,
		Timestamp:            time.Now().UTC(),
		Source:               sourceVolunteerForm,
	}
	return s.Dispatcher.Dispatch(context.Background(), submission)
}
