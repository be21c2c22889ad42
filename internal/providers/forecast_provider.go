package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"benqqqq/weather-tool/internal/observability"
)

const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"

type ForecastService interface {
	GetCurrentConditions(ctx context.Context, latitude, longitude float64) (CurrentConditions, error)
}

type forecastService struct {
	baseURL string
	client  *http.Client
	metrics *observability.Metrics
}

func NewForecastService(baseURL string, timeout time.Duration, metrics *observability.Metrics) ForecastService {
	return &forecastService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
	}
}

type ForecastResponse struct {
	Current *struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
		WeatherCode        int     `json:"weather_code"`
	} `json:"current"`
}

func (s *forecastService) GetCurrentConditions(ctx context.Context, latitude, longitude float64) (CurrentConditions, error) {
	// wind_speed_10m is km/h unless wind_speed_unit says otherwise.
	params := url.Values{
		"latitude":  {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"current":   {currentFields},
		"timezone":  {"auto"},
	}

	var apiResp ForecastResponse
	if err := getJSON(ctx, s.client, s.metrics, upstreamForecast, s.baseURL+"/v1/forecast?"+params.Encode(), &apiResp); err != nil {
		return CurrentConditions{}, err
	}

	if apiResp.Current == nil {
		return CurrentConditions{}, fmt.Errorf("%s: %w: missing current block", upstreamForecast, ErrMalformedResponse)
	}

	return CurrentConditions{
		TemperatureC:    apiResp.Current.Temperature2m,
		HumidityPercent: apiResp.Current.RelativeHumidity2m,
		WindSpeedKph:    apiResp.Current.WindSpeed10m,
		WeatherCode:     apiResp.Current.WeatherCode,
	}, nil
}
