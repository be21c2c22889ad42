// Package tool exposes the weather lookup as a tool an agent host can call.
//
// A host lists the registered tools through their Definition, shows the
// user the PreparedInvocation for confirmation, then calls Invoke with
// the JSON arguments the model produced.
package tool

import (
	"context"
	"encoding/json"
)

const (
	TypeFunction = "function"
	PartTypeText = "text"
)

// Definition describes a tool to the host and model.
type Definition struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// Part is one piece of tool output. The weather tool only emits text.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Result struct {
	Content []Part `json:"content"`
}

func TextResult(text string) Result {
	return Result{Content: []Part{{Type: PartTypeText, Text: text}}}
}

type ConfirmationMessages struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// PreparedInvocation is what the host shows before and while the tool runs.
type PreparedInvocation struct {
	InvocationMessage    string               `json:"invocationMessage"`
	ConfirmationMessages ConfirmationMessages `json:"confirmationMessages"`
}

type Executor interface {
	Definition() Definition
	PrepareInvocation(arguments json.RawMessage) (PreparedInvocation, error)
	Invoke(ctx context.Context, arguments json.RawMessage) (Result, error)
}
