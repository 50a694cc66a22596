package intent

import (
	"encoding/json"
	"strconv"
	"strings"
)

// rawDescriptor is the untrusted shape of one function call coming from the
// interpretation service.
type rawDescriptor struct {
	Function   string                     `json:"function"`
	Parameters map[string]json.RawMessage `json:"parameters"`
}

// Normalize coerces the raw function_call payload into an ordered sequence of
// typed operations. The payload may be absent, a single descriptor object, or
// a list of descriptors; malformed individual descriptors are dropped rather
// than aborting the batch, and an unparsable payload yields an empty sequence
// so the upstream reply can pass through untouched.
func Normalize(functionCall json.RawMessage) []Operation {
	raw := bytesTrim(functionCall)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var descriptors []rawDescriptor
	switch raw[0] {
	case '{':
		var single rawDescriptor
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		descriptors = []rawDescriptor{single}
	case '[':
		if err := json.Unmarshal(raw, &descriptors); err != nil {
			return nil
		}
	default:
		return nil
	}

	var ops []Operation
	for _, descriptor := range descriptors {
		if op, ok := normalizeDescriptor(descriptor); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// normalizeDescriptor validates a single descriptor against the per-function
// required fields. Returns false when the descriptor must be dropped.
func normalizeDescriptor(descriptor rawDescriptor) (Operation, bool) {
	switch Op(descriptor.Function) {
	case OpAddTask:
		description, ok := stringParam(descriptor.Parameters, "description")
		if !ok {
			return Operation{}, false
		}
		return Operation{Op: OpAddTask, Description: description}, true

	case OpViewTasks:
		return Operation{Op: OpViewTasks}, true

	case OpCompleteTask:
		ref, ok := refParam(descriptor.Parameters)
		if !ok {
			return Operation{}, false
		}
		return Operation{Op: OpCompleteTask, Ref: ref}, true

	case OpDeleteTask:
		ref, ok := refParam(descriptor.Parameters)
		if !ok {
			return Operation{}, false
		}
		return Operation{Op: OpDeleteTask, Ref: ref}, true

	case OpUpdateTask:
		ref, ok := refParam(descriptor.Parameters)
		if !ok {
			return Operation{}, false
		}
		description, ok := stringParam(descriptor.Parameters, "description")
		if !ok {
			return Operation{}, false
		}
		return Operation{Op: OpUpdateTask, Ref: ref, Description: description}, true

	default:
		return Operation{}, false
	}
}

// stringParam extracts a required non-empty string parameter.
func stringParam(parameters map[string]json.RawMessage, key string) (string, bool) {
	raw, exists := parameters[key]
	if !exists {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// refParam extracts the task_id parameter, accepting a JSON number or a
// numeric string (the service is free about how it spells ordinals).
func refParam(parameters map[string]json.RawMessage) (int64, bool) {
	raw, exists := parameters["task_id"]
	if !exists {
		return 0, false
	}

	var number int64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number, true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if number, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil {
			return number, true
		}
	}

	return 0, false
}

func bytesTrim(raw json.RawMessage) []byte {
	return []byte(strings.TrimSpace(string(raw)))
}
