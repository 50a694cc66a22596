// Package intent turns the untrusted payload of the interpretation service
// into typed operations and executes them against the task store.
package intent

// Op identifies an operation requested by the interpretation service.
// The values match the function names of the interpretation contract.
type Op string

const (
	OpAddTask      Op = "addTask"
	OpViewTasks    Op = "viewTasks"
	OpCompleteTask Op = "completeTask"
	OpDeleteTask   Op = "deleteTask"
	OpUpdateTask   Op = "updateTask"
)

// Operation is a normalized, validated operation. Ref is either a concrete
// task id or a 1-based ordinal; it is resolved at execution time.
type Operation struct {
	Op          Op
	Description string
	Ref         int64
}

// Descriptor returns the wire representation of the operation, used when the
// HTTP boundary echoes the normalized function_call list back to the client.
func (o Operation) Descriptor() map[string]any {
	parameters := map[string]any{}
	switch o.Op {
	case OpAddTask:
		parameters["description"] = o.Description
	case OpCompleteTask, OpDeleteTask:
		parameters["task_id"] = o.Ref
	case OpUpdateTask:
		parameters["task_id"] = o.Ref
		parameters["description"] = o.Description
	}
	return map[string]any{
		"function":   string(o.Op),
		"parameters": parameters,
	}
}

// Descriptors converts a normalized sequence back to its wire shape.
// A nil result stands for "no function call".
func Descriptors(ops []Operation) []map[string]any {
	if len(ops) == 0 {
		return nil
	}
	descriptors := make([]map[string]any, len(ops))
	for i, op := range ops {
		descriptors[i] = op.Descriptor()
	}
	return descriptors
}
