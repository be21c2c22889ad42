package providers

import (
	"errors"
)

// GeoLocation is the best geocoder match for a city name.
type GeoLocation struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// CurrentConditions is the current weather at a coordinate.
type CurrentConditions struct {
	TemperatureC    float64
	HumidityPercent float64
	WindSpeedKph    float64
	WeatherCode     int
}

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrTransport         = errors.New("request failed")
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrMalformedResponse = errors.New("malformed response")
)

// FailureReason classifies a provider error for logs and metrics.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrLocationNotFound):
		return "not_found"
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, ErrMalformedResponse):
		return "parse"
	default:
		return "transport"
	}
}
