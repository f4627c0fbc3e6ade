package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"akshara/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatchPostsJSONPayload(t *testing.T) {
	var (
		gotBody        []byte
		gotContentType string
		gotMethod      string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewHTTPDispatcher(server.URL, zap.NewNop())
	ok := d.Dispatch(context.Background(), models.BookingSubmission{
		Name:      "A. Student",
		Email:     "a@example.com",
		Date:      "2025-03-12",
		Time:      "10:30",
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Source:    "website_booking_modal",
	})

	assert.True(t, ok)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "A. Student", payload["name"])
	assert.Equal(t, "a@example.com", payload["email"])
	assert.Equal(t, "2025-03-12", payload["date"])
	assert.Equal(t, "10:30", payload["time"])
	assert.Equal(t, "website_booking_modal", payload["source"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestDispatchReportsSuccessOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	d := NewHTTPDispatcher(server.URL, zap.NewNop())
	assert.True(t, d.Dispatch(context.Background(), map[string]string{"k": "v"}))
}

func TestDispatchReportsSuccessOnNetworkError(t *testing.T) {
	// Nothing listens here; the connection is refused.
	d := NewHTTPDispatcher("http://127.0.0.1:1/webhook", zap.NewNop())
	assert.True(t, d.Dispatch(context.Background(), map[string]string{"k": "v"}))
}
