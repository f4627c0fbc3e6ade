package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"akshara/handlers"
	"akshara/models"
	"akshara/routes"
	"akshara/services/booking"
	"akshara/services/donation"
	"akshara/services/volunteer"
	"akshara/services/webhook"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContent struct{}

func (f *fakeContent) Founders() ([]models.Founder, error) {
	return []models.Founder{
		{ID: "f1", Name: "Dr. Rajesh Kumar", Role: "President & Founder"},
		{ID: "f2", Name: "Lakshmi Devi", Role: "Director of Operations"},
	}, nil
}

func (f *fakeContent) StaffOptions() ([]models.StaffOption, error) {
	founders, _ := f.Founders()
	options := []models.StaffOption{{ID: "", Name: "Any Staff Member"}}
	for _, fd := range founders {
		options = append(options, models.StaffOption{ID: fd.ID, Name: fd.Name})
	}
	return options, nil
}

func (f *fakeContent) Programs() ([]models.Program, error)   { return nil, nil }
func (f *fakeContent) Events() ([]models.Event, error)       { return nil, nil }
func (f *fakeContent) BlogPosts() ([]models.BlogPost, error) { return nil, nil }
func (f *fakeContent) Testimonials() []models.Testimonial    { return nil }
func (f *fakeContent) Gallery() []string                     { return nil }
func (f *fakeContent) Stats() []models.Stat                  { return nil }
func (f *fakeContent) Details() models.OrgDetails {
	return models.OrgDetails{Name: "Akshara Bharata Society"}
}
func (f *fakeContent) LegalDoc(name string) (string, error) {
	if name == "privacy" {
		return "# Privacy Policy", nil
	}
	return "", fmt.Errorf("unknown legal document %q", name)
}

// newTestRouter wires the real router against an embedded Redis and an
// unreachable webhook endpoint, so the masked-failure contract is exercised
// end to end.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := zap.NewNop()

	// Nothing listens on this address; every dispatch hits a network error.
	dispatcher := webhook.NewHTTPDispatcher("http://127.0.0.1:1/webhook", logger)

	bookingService := &booking.DefaultBookingSessionService{
		Cache:      cache,
		Dispatcher: dispatcher,
	}
	contentService := &fakeContent{}
	volunteerService := &volunteer.DefaultVolunteerService{Dispatcher: dispatcher}
	donationService := &donation.DefaultDonationService{Logger: logger}

	hb := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService, contentService, logger),
		Content:   handlers.NewContentHandler(contentService, logger),
		Volunteer: handlers.NewVolunteerHandler(volunteerService, logger),
		Donation:  handlers.NewDonationHandler(donationService, logger),
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func openSession(t *testing.T, router *gin.Engine, staffID string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/booking/session", map[string]string{"staffId": staffID})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	session := body["session"].(map[string]any)
	return session["sessionId"].(string)
}

func TestOpenSessionReturnsStaffOptions(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/booking/session", map[string]string{"staffId": "f2"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	session := body["session"].(map[string]any)
	assert.Equal(t, "form", session["phase"])

	form := session["form"].(map[string]any)
	assert.Equal(t, "f2", form["staffId"])
	assert.Equal(t, "Partnership", form["purpose"])

	options := body["staffOptions"].([]any)
	require.NotEmpty(t, options)
	first := options[0].(map[string]any)
	assert.Equal(t, "", first["id"])
	assert.Equal(t, "Any Staff Member", first["name"])
	assert.Len(t, options, 3)
}

func TestSlotsHiddenUntilDateSelected(t *testing.T) {
	router := newTestRouter(t)
	id := openSession(t, router, "")

	w := doJSON(t, router, http.MethodGet, "/api/booking/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode(t, w)["session"].(map[string]any)
	assert.Nil(t, session["slots"])

	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/date",
		map[string]int{"year": 2025, "month": 3, "day": 12})
	require.Equal(t, http.StatusOK, w.Code)
	session = decode(t, w)["session"].(map[string]any)
	slots := session["slots"].([]any)
	assert.Len(t, slots, 18)
	assert.Equal(t, "9:00", slots[0])
	assert.Equal(t, "17:30", slots[17])
}

func TestBookingWidgetHappyPath(t *testing.T) {
	router := newTestRouter(t)
	id := openSession(t, router, "f1")

	w := doJSON(t, router, http.MethodPut, "/api/booking/session/"+id, map[string]any{
		"name":  "A. Student",
		"email": "a@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/date",
		map[string]int{"year": 2025, "month": 3, "day": 12})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/booking/session/"+id+"/time",
		map[string]string{"slot": "10:30"})
	require.Equal(t, http.StatusOK, w.Code)

	// The webhook endpoint is unreachable, yet the submission succeeds.
	w = doJSON(t, router, http.MethodPost, "/api/booking/confirm",
		map[string]string{"sessionID": id})
	require.Equal(t, http.StatusOK, w.Code)

	session := decode(t, w)["session"].(map[string]any)
	assert.Equal(t, "success", session["phase"])
	confirmation := session["confirmation"].(map[string]any)
	assert.Equal(t, "2025-03-12 at 10:30", confirmation["scheduledFor"])
	assert.Equal(t, "a@example.com", confirmation["email"])
}

func TestConfirmWithoutSelectionIsRejected(t *testing.T) {
	router := newTestRouter(t)
	id := openSession(t, router, "")

	w := doJSON(t, router, http.MethodPost, "/api/booking/confirm",
		map[string]string{"sessionID": id})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "please select a date and time", decode(t, w)["error"])

	// The session stays in the form phase.
	w = doJSON(t, router, http.MethodGet, "/api/booking/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode(t, w)["session"].(map[string]any)
	assert.Equal(t, "form", session["phase"])
}

func TestUnknownSessionReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/booking/session/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCloseDiscardsSession(t *testing.T) {
	router := newTestRouter(t)
	id := openSession(t, router, "")

	w := doJSON(t, router, http.MethodDelete, "/api/booking/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/booking/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLegalDocEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/content/legal/privacy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# Privacy Policy", decode(t, w)["content"])

	w = doJSON(t, router, http.MethodGet, "/api/content/legal/imprint", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVolunteerApply(t *testing.T) {
	router := newTestRouter(t)

	// Missing required fields.
	w := doJSON(t, router, http.MethodPost, "/api/volunteer/apply",
		map[string]string{"name": "Sarah Jenkins"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A valid application is accepted even though the webhook is down.
	w = doJSON(t, router, http.MethodPost, "/api/volunteer/apply", map[string]string{
		"name":  "Sarah Jenkins",
		"phone": "555-0101",
		"email": "sarah@example.com",
		"role":  "Teaching",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "received", decode(t, w)["status"])
}

func TestDonationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/donations",
		map[string]any{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/donations",
		map[string]any{"amount": 2000, "frequency": "monthly"})
	require.Equal(t, http.StatusOK, w.Code)
	receipt := decode(t, w)["receipt"].(map[string]any)
	assert.Equal(t, "Textbooks for a whole class", receipt["impact"])
	assert.NotEmpty(t, receipt["receiptId"])
}
