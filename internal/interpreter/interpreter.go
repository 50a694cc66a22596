// Package interpreter translates free-form chat messages into the structured
// intent contract by calling an OpenAI-compatible chat completion service.
package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
)

// IntentResult is the structured outcome of interpreting one user message.
// FunctionCall carries the raw, untrusted function_call payload exactly as
// the upstream model produced it; normalization happens downstream.
type IntentResult struct {
	FunctionCall json.RawMessage `json:"function_call"`
	Reply        string          `json:"reply"`
}

// Interpreter classifies a user message into task operations and a reply.
type Interpreter interface {
	Interpret(ctx context.Context, message string) *IntentResult
}

// Fallback builds the conversational-only result used whenever
// interpretation fails. No function call is attached, so the caller applies
// nothing to the store.
func Fallback(reason string) *IntentResult {
	return &IntentResult{
		FunctionCall: nil,
		Reply:        fmt.Sprintf("Sorry, I couldn't interpret that (%s)", reason),
	}
}
