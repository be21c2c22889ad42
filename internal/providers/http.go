package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"benqqqq/weather-tool/internal/observability"
)

const (
	upstreamGeocoding = "geocoding"
	upstreamForecast  = "forecast"
)

// apiErrorResponse is the body Open-Meteo returns alongside 4xx statuses.
type apiErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func getJSON(ctx context.Context, client *http.Client, metrics *observability.Metrics, upstream, url string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(upstream).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequests.WithLabelValues(upstream, FailureReason(err)).Inc()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w: %v", upstream, ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", upstream, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Reason != "" {
			return fmt.Errorf("%s: %w %d: %s", upstream, ErrUnexpectedStatus, resp.StatusCode, apiErr.Reason)
		}
		return fmt.Errorf("%s: %w %d", upstream, ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", upstream, ErrMalformedResponse, err)
	}

	return nil
}
