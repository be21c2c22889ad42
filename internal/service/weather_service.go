package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"benqqqq/weather-tool/internal/db/weatherquery"
	"benqqqq/weather-tool/internal/observability"
	"benqqqq/weather-tool/internal/providers"
)

type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeCityNotFound       Outcome = "city_not_found"
	OutcomeWeatherUnavailable Outcome = "weather_unavailable"
	OutcomeUnexpectedFailure  Outcome = "unexpected_failure"
)

const (
	cityNotFoundFormat       = "City \"%s\" not found. Please check the city name and try again."
	weatherUnavailableFormat = "Unable to fetch weather for %s. Please try again later."
	unknownErrorMessage      = "Unknown error"

	historyWriteTimeout = 5 * time.Second
)

// Result carries exactly one of Report or Error.
type Result struct {
	Outcome Outcome
	Report  *WeatherReport
	Error   *ErrorReport
}

// Payload returns whichever of Report or Error is set.
func (r Result) Payload() interface{} {
	if r.Report != nil {
		return r.Report
	}
	return r.Error
}

func (r Result) JSON() ([]byte, error) {
	return MarshalPayload(r.Payload())
}

type WeatherService interface {
	// GetWeather never returns an error; failures come back as an ErrorReport.
	GetWeather(ctx context.Context, city string) Result
	// Shutdown waits for pending history writes.
	Shutdown()
}

type weatherService struct {
	geocoder   providers.GeocodingService
	forecaster providers.ForecastService
	history    weatherquery.Repository
	metrics    *observability.Metrics
	pending    sync.WaitGroup
}

// NewWeatherService builds the lookup pipeline. history may be nil.
func NewWeatherService(
	geocoder providers.GeocodingService,
	forecaster providers.ForecastService,
	history weatherquery.Repository,
	metrics *observability.Metrics,
) WeatherService {
	return &weatherService{
		geocoder:   geocoder,
		forecaster: forecaster,
		history:    history,
		metrics:    metrics,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, city string) (result Result) {
	entry := &weatherquery.WeatherQuery{City: city}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("city", city).Msg("weather lookup panicked")
			result = Result{
				Outcome: OutcomeUnexpectedFailure,
				Error:   &ErrorReport{Error: panicMessage(r), City: city},
			}
		}

		s.metrics.Lookups.WithLabelValues(string(result.Outcome)).Inc()
		entry.Outcome = string(result.Outcome)
		s.record(ctx, entry)
	}()

	location, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Str("reason", providers.FailureReason(err)).Msg("geocoding failed")
		return Result{
			Outcome: OutcomeCityNotFound,
			Error:   &ErrorReport{Error: fmt.Sprintf(cityNotFoundFormat, city), City: city},
		}
	}

	entry.DisplayName = location.DisplayName
	entry.Latitude = location.Latitude
	entry.Longitude = location.Longitude

	conditions, err := s.forecaster.GetCurrentConditions(ctx, location.Latitude, location.Longitude)
	if err != nil {
		log.Warn().Err(err).
			Str("city", city).
			Str("display_name", location.DisplayName).
			Str("reason", providers.FailureReason(err)).
			Msg("forecast fetch failed")
		return Result{
			Outcome: OutcomeWeatherUnavailable,
			Error:   &ErrorReport{Error: fmt.Sprintf(weatherUnavailableFormat, location.DisplayName), City: city},
		}
	}

	entry.TemperatureC = conditions.TemperatureC
	entry.WeatherCode = conditions.WeatherCode

	report := BuildReport(location, conditions)

	log.Debug().
		Str("city", city).
		Str("display_name", report.City).
		Int("weather_code", report.WeatherCode).
		Msg("weather lookup succeeded")

	return Result{Outcome: OutcomeSuccess, Report: &report}
}

func (s *weatherService) record(ctx context.Context, entry *weatherquery.WeatherQuery) {
	if s.history == nil {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historyWriteTimeout)
		defer cancel()

		if err := s.history.LogWeatherQuery(writeCtx, entry); err != nil {
			log.Error().Err(err).Str("city", entry.City).Msg("Failed to log weather query")
		}
	}()
}

func (s *weatherService) Shutdown() {
	s.pending.Wait()
}

func panicMessage(r interface{}) string {
	var msg string
	switch v := r.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	case fmt.Stringer:
		msg = v.String()
	}
	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}
