package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"benqqqq/weather-tool/internal/providers"
	"benqqqq/weather-tool/internal/weathercode"
)

const DataSource = "Open-Meteo API"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type WeatherReport struct {
	City        string      `json:"city"`
	Coordinates Coordinates `json:"coordinates"`
	Temperature string      `json:"temperature"`
	Condition   string      `json:"condition"`
	Humidity    string      `json:"humidity"`
	WindSpeed   string      `json:"windSpeed"`
	WeatherCode int         `json:"weatherCode"`
	Summary     string      `json:"summary"`
	DataSource  string      `json:"dataSource"`
}

type ErrorReport struct {
	Error string `json:"error"`
	City  string `json:"city"`
}

// BuildReport formats a successful lookup. Temperature and wind speed are
// rounded for display; humidity, coordinates and the weather code are not.
func BuildReport(location providers.GeoLocation, conditions providers.CurrentConditions) WeatherReport {
	temperature := roundHalfUp(conditions.TemperatureC)
	windSpeed := roundHalfUp(conditions.WindSpeedKph)
	humidity := formatNumber(conditions.HumidityPercent)
	condition := weathercode.Describe(conditions.WeatherCode)

	return WeatherReport{
		City: location.DisplayName,
		Coordinates: Coordinates{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		},
		Temperature: fmt.Sprintf("%d°C", temperature),
		Condition:   condition,
		Humidity:    humidity + "%",
		WindSpeed:   fmt.Sprintf("%d km/h", windSpeed),
		WeatherCode: conditions.WeatherCode,
		Summary: fmt.Sprintf(
			"%s is currently %d°C with %s conditions. Humidity is at %s%% and wind speed is %d km/h.",
			location.DisplayName, temperature, condition, humidity, windSpeed,
		),
		DataSource: DataSource,
	}
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// formatNumber prints the shortest representation: 70 -> "70", 70.5 -> "70.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MarshalPayload encodes v as UTF-8 JSON indented by two spaces, leaving
// characters like '&' and '<' unescaped.
func MarshalPayload(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
