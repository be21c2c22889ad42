package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"benqqqq/weather-tool/internal/service"
	"benqqqq/weather-tool/internal/tool"
)

const maxRequestBody = 1 << 20

type WeatherHandler struct {
	weatherService service.WeatherService
	tools          *tool.Manager
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, tools *tool.Manager, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		tools:          tools,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/weather":
		h.GetWeather(w, r)
	case r.URL.Path == "/tools":
		h.ListTools(w, r)
	case strings.HasPrefix(r.URL.Path, "/tools/"):
		h.CallTool(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.URL.Path != "/weather" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	city := r.URL.Query().Get("city")
	if strings.TrimSpace(city) == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'city' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.weatherService.GetWeather(ctx, city)

	body, err := result.JSON()
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to encode weather result")
		respondWithError(w, http.StatusInternalServerError, "failed to encode weather result: "+err.Error())
		return
	}

	respondWithRaw(w, statusForOutcome(result.Outcome), body)
}

func (h *WeatherHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, ToolsResponse{Tools: h.tools.Definitions()})
}

// CallTool serves POST /tools/{name}/invoke and POST /tools/{name}/prepare.
func (h *WeatherHandler) CallTool(w http.ResponseWriter, r *http.Request) {
	name, action, ok := strings.Cut(strings.TrimPrefix(r.URL.Path, "/tools/"), "/")
	if !ok || name == "" || (action != "invoke" && action != "prepare") {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	executor, err := h.tools.Get(name)
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	var req InvokeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Input) == 0 {
		respondWithError(w, http.StatusBadRequest, "request field 'input' is required")
		return
	}

	if action == "prepare" {
		prepared, err := executor.PrepareInvocation(req.Input)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, prepared)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := executor.Invoke(ctx, req.Input)
	if err != nil {
		log.Warn().Err(err).Str("tool", name).Msg("tool invocation rejected")
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func statusForOutcome(outcome service.Outcome) int {
	switch outcome {
	case service.OutcomeSuccess:
		return http.StatusOK
	case service.OutcomeCityNotFound:
		return http.StatusNotFound
	case service.OutcomeWeatherUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
