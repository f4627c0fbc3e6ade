package volunteer

import (
	"context"
	"testing"
	"time"

	"akshara/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	ok   bool
	last any
}

func (f *fakeDispatcher) Dispatch(_ context.Context, payload any) bool {
	f.last = payload
	return f.ok
}

func TestSubmitApplicationStampsPayload(t *testing.T) {
	d := &fakeDispatcher{ok: true}
	svc := &DefaultVolunteerService{Dispatcher: d}

	before := time.Now().UTC()
	ok := svc.SubmitApplication(models.VolunteerApplication{
		Name:  "Sarah Jenkins",
		Phone: "555-0101",
		Email: "sarah@example.com",
		Role:  "Teaching",
	})
	assert.True(t, ok)

	submission, isSubmission := d.last.(models.VolunteerSubmission)
	require.True(t, isSubmission)
	assert.Equal(t, "Sarah Jenkins", submission.Name)
	assert.Equal(t, "website_volunteer_form", submission.Source)
	assert.False(t, submission.Timestamp.Before(before))
}

func TestSubmitApplicationPassesThroughDispatchResult(t *testing.T) {
	svc := &DefaultVolunteerService{Dispatcher: &fakeDispatcher{ok: false}}
	assert.False(t, svc.SubmitApplication(models.VolunteerApplication{Name: "x"}))
}
