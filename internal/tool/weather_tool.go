package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"benqqqq/weather-tool/internal/service"
)

const WeatherToolName = "weather-tool_getWeather"

type WeatherInput struct {
	City string `json:"city"`
}

type WeatherTool struct {
	weatherService service.WeatherService
}

var _ Executor = (*WeatherTool)(nil)

func NewWeatherTool(weatherService service.WeatherService) *WeatherTool {
	return &WeatherTool{weatherService: weatherService}
}

func (t *WeatherTool) Definition() Definition {
	return Definition{
		Type: TypeFunction,
		Function: Function{
			Name:        WeatherToolName,
			Description: "Get the current weather conditions for a city: temperature, condition, humidity and wind speed.",
			Parameters: JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"city": {
						Type:        "string",
						Description: "The name of the city, e.g. Paris or New York",
					},
				},
				Required: []string{"city"},
			},
		},
	}
}

func (t *WeatherTool) PrepareInvocation(arguments json.RawMessage) (PreparedInvocation, error) {
	input, err := decodeInput(arguments)
	if err != nil {
		return PreparedInvocation{}, err
	}

	return PreparedInvocation{
		InvocationMessage: fmt.Sprintf("Getting weather data for %s...", input.City),
		ConfirmationMessages: ConfirmationMessages{
			Title:   "Get Weather Information",
			Message: fmt.Sprintf("Get current weather information for **%s**?", input.City),
		},
	}, nil
}

// Invoke returns an error only for undecodable arguments. Lookup failures are
// reported inside the result as a JSON error object.
func (t *WeatherTool) Invoke(ctx context.Context, arguments json.RawMessage) (Result, error) {
	input, err := decodeInput(arguments)
	if err != nil {
		return Result{}, err
	}

	result := t.weatherService.GetWeather(ctx, input.City)

	payload, err := result.JSON()
	if err != nil {
		log.Error().Err(err).Str("city", input.City).Msg("failed to encode weather result")
		payload, _ = service.MarshalPayload(service.ErrorReport{Error: err.Error(), City: input.City})
	}

	return TextResult(string(payload)), nil
}

func decodeInput(arguments json.RawMessage) (WeatherInput, error) {
	var input WeatherInput
	if err := json.Unmarshal(arguments, &input); err != nil {
		return WeatherInput{}, fmt.Errorf("invalid arguments for %s: %w", WeatherToolName, err)
	}
	return input, nil
}
