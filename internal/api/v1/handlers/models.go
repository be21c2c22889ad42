package handlers

import (
	"encoding/json"

	"benqqqq/weather-tool/internal/tool"
)

type InvokeRequest struct {
	Input json.RawMessage `json:"input"`
}

type ToolsResponse struct {
	Tools []tool.Definition `json:"tools"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
