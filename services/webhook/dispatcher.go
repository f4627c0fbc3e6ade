package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Dispatcher posts a JSON payload to a fixed automation webhook endpoint.
// The reported outcome follows the documented contract of the site: the
// submission is treated as successful regardless of transport-level outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload any) bool
}

// HTTPDispatcher implements Dispatcher with a single HTTP POST. No retry,
// no backoff; one shot per submission.
type HTTPDispatcher struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// NewHTTPDispatcher builds a dispatcher for the given endpoint URL.
func NewHTTPDispatcher(url string, logger *zap.Logger) *HTTPDispatcher {
	return &HTTPDispatcher{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

// Dispatch serializes the payload and posts it with Content-Type
// application/json. Network failures and non-2xx statuses are logged and
// coerced to success: a webhook outage must never surface to the visitor.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, payload any) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		d.Logger.Error("failed to marshal webhook payload", zap.Error(err))
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		d.Logger.Error("failed to build webhook request", zap.Error(err))
		return true
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		d.Logger.Warn("webhook submission failed, reporting success",
			zap.String("url", d.URL), zap.Error(err))
		return true
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.Logger.Warn("webhook returned non-success status, reporting success",
			zap.String("url", d.URL), zap.Int("status", resp.StatusCode))
	}
	return true
}
