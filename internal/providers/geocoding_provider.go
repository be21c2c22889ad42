package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"benqqqq/weather-tool/internal/observability"
)

type GeocodingService interface {
	Geocode(ctx context.Context, city string) (GeoLocation, error)
}

type geocodingService struct {
	baseURL string
	client  *http.Client
	metrics *observability.Metrics
}

func NewGeocodingService(baseURL string, timeout time.Duration, metrics *observability.Metrics) GeocodingService {
	return &geocodingService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
	}
}

type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
}

// DisplayName renders "City, Region, Country", dropping the region when the
// geocoder has none.
func (r GeocodingResult) DisplayName() string {
	if r.Admin1 != "" {
		return fmt.Sprintf("%s, %s, %s", r.Name, r.Admin1, r.Country)
	}
	return fmt.Sprintf("%s, %s", r.Name, r.Country)
}

func (s *geocodingService) Geocode(ctx context.Context, city string) (GeoLocation, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return GeoLocation{}, fmt.Errorf("%s: %w", upstreamGeocoding, ErrLocationNotFound)
	}

	params := url.Values{
		"name":     {name},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}

	var apiResp GeocodingResponse
	if err := getJSON(ctx, s.client, s.metrics, upstreamGeocoding, s.baseURL+"/v1/search?"+params.Encode(), &apiResp); err != nil {
		return GeoLocation{}, err
	}

	if len(apiResp.Results) == 0 {
		return GeoLocation{}, fmt.Errorf("%s: %q: %w", upstreamGeocoding, name, ErrLocationNotFound)
	}

	match := apiResp.Results[0]

	return GeoLocation{
		Latitude:    match.Latitude,
		Longitude:   match.Longitude,
		DisplayName: match.DisplayName(),
	}, nil
}
