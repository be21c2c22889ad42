package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"benqqqq/weather-tool/internal/observability"
	"benqqqq/weather-tool/internal/providers"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	server  *httptest.Server
	metrics *observability.Metrics
	service providers.ForecastService
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/forecast", r.URL.Path)
		s.Equal("temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code", r.URL.Query().Get("current"))
		s.Equal("auto", r.URL.Query().Get("timezone"))

		switch r.URL.Query().Get("latitude") {
		case "48.85":
			s.Equal("2.35", r.URL.Query().Get("longitude"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"latitude":  48.86,
				"longitude": 2.34,
				"current": map[string]interface{}{
					"time":                 "2026-10-14T12:00",
					"temperature_2m":       25.3,
					"relative_humidity_2m": 70,
					"wind_speed_10m":       8.2,
					"weather_code":         3,
				},
			})
		case "1":
			json.NewEncoder(w).Encode(map[string]interface{}{"latitude": 1.0})
		case "2":
			w.Write([]byte("{malformed json"))
		case "3":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "reason": "Latitude must be in range of -90 to 90°."})
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))

	s.metrics = observability.NewMetricsForTesting()
	s.service = providers.NewForecastService(s.server.URL, 5*time.Second, s.metrics)
}

func (s *ForecastServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ForecastServiceTestSuite) TestGetCurrentConditions_Success() {
	conditions, err := s.service.GetCurrentConditions(context.Background(), 48.85, 2.35)
	s.NoError(err)
	s.Equal(providers.CurrentConditions{
		TemperatureC:    25.3,
		HumidityPercent: 70,
		WindSpeedKph:    8.2,
		WeatherCode:     3,
	}, conditions)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UpstreamRequests.WithLabelValues("forecast", "success")))
}

func (s *ForecastServiceTestSuite) TestGetCurrentConditions_MissingCurrent() {
	_, err := s.service.GetCurrentConditions(context.Background(), 1, 0)
	s.ErrorIs(err, providers.ErrMalformedResponse)
	s.Contains(err.Error(), "missing current block")
}

func (s *ForecastServiceTestSuite) TestGetCurrentConditions_MalformedJSON() {
	_, err := s.service.GetCurrentConditions(context.Background(), 2, 0)
	s.ErrorIs(err, providers.ErrMalformedResponse)
}

func (s *ForecastServiceTestSuite) TestGetCurrentConditions_BadRequest() {
	_, err := s.service.GetCurrentConditions(context.Background(), 3, 0)
	s.ErrorIs(err, providers.ErrUnexpectedStatus)
	s.Contains(err.Error(), "Latitude must be in range")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UpstreamRequests.WithLabelValues("forecast", "status")))
}

func (s *ForecastServiceTestSuite) TestGetCurrentConditions_ServerError() {
	_, err := s.service.GetCurrentConditions(context.Background(), 4, 0)
	s.ErrorIs(err, providers.ErrUnexpectedStatus)
	s.Contains(err.Error(), "503")
}

func (s *ForecastServiceTestSuite) TestGetCurrentConditions_TransportError() {
	s.server.Close()

	_, err := s.service.GetCurrentConditions(context.Background(), 48.85, 2.35)
	s.ErrorIs(err, providers.ErrTransport)
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
