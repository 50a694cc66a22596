package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"todo-chat/internal/domain"
	apperrors "todo-chat/internal/errors"
	"todo-chat/internal/services"
)

// OutcomeStatus classifies what happened to a single operation.
type OutcomeStatus string

const (
	StatusApplied  OutcomeStatus = "applied"
	StatusNotFound OutcomeStatus = "not_found"
	StatusInvalid  OutcomeStatus = "invalid"
	StatusListed   OutcomeStatus = "listed"
)

// Outcome is the per-operation execution result.
type Outcome struct {
	Op     Op            `json:"operation"`
	Status OutcomeStatus `json:"status"`
	Task   *domain.Task  `json:"task,omitempty"`
	Ref    int64         `json:"ref,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// Result is the aggregate of executing one normalized batch.
type Result struct {
	Outcomes      []Outcome
	Reply         string
	ListRequested bool
}

// Executor applies normalized operations to the task store.
type Executor struct {
	tasks  services.TaskService
	logger *zap.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(tasks services.TaskService, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{tasks: tasks, logger: logger}
}

// Execute applies every operation in order and composes a single reply.
// Individual failures never halt the batch and applied operations are never
// rolled back; each one is reported in its outcome instead. The upstream
// reply, when present, wins over the synthesized one: the interpretation
// service has already phrased a summary in the user's language, while the
// mutations themselves always happen here.
func (e *Executor) Execute(ctx context.Context, ops []Operation, upstreamReply string) *Result {
	result := &Result{}

	for _, op := range ops {
		outcome := e.apply(ctx, op)
		if outcome.Status == StatusListed {
			result.ListRequested = true
		}
		result.Outcomes = append(result.Outcomes, outcome)

		e.logger.Debug("executed operation",
			zap.String("operation", string(op.Op)),
			zap.String("status", string(outcome.Status)))
	}

	if reply := strings.TrimSpace(upstreamReply); reply != "" {
		result.Reply = reply
	} else {
		result.Reply = synthesizeReply(result.Outcomes)
	}

	return result
}

func (e *Executor) apply(ctx context.Context, op Operation) Outcome {
	switch op.Op {
	case OpAddTask:
		task, err := e.tasks.Create(ctx, op.Description)
		if err != nil {
			return Outcome{Op: op.Op, Status: StatusInvalid, Reason: apperrors.GetUserMessage(err)}
		}
		return Outcome{Op: op.Op, Status: StatusApplied, Task: task}

	case OpViewTasks:
		// No store side effect; the response layer attaches the listing.
		return Outcome{Op: op.Op, Status: StatusListed}

	case OpCompleteTask:
		return e.applyRef(ctx, op, func(id int64) (*domain.Task, error) {
			return e.tasks.Complete(ctx, id)
		})

	case OpDeleteTask:
		return e.applyRef(ctx, op, func(id int64) (*domain.Task, error) {
			return nil, e.tasks.Delete(ctx, id)
		})

	case OpUpdateTask:
		return e.applyRef(ctx, op, func(id int64) (*domain.Task, error) {
			return e.tasks.Update(ctx, id, domain.TaskUpdate{Description: &op.Description})
		})

	default:
		return Outcome{Op: op.Op, Status: StatusInvalid, Reason: "unknown operation"}
	}
}

// applyRef resolves the operation's task reference against a fresh listing
// and runs the mutation. The listing is re-read per operation because earlier
// operations in the batch may have shifted positions.
func (e *Executor) applyRef(ctx context.Context, op Operation, mutate func(id int64) (*domain.Task, error)) Outcome {
	tasks, err := e.tasks.List(ctx)
	if err != nil {
		return Outcome{Op: op.Op, Status: StatusInvalid, Ref: op.Ref, Reason: apperrors.GetUserMessage(err)}
	}

	id, err := Resolve(op.Ref, tasks)
	if err != nil {
		var refErr *RefNotFoundError
		if errors.As(err, &refErr) {
			return Outcome{Op: op.Op, Status: StatusNotFound, Ref: op.Ref}
		}
		return Outcome{Op: op.Op, Status: StatusInvalid, Ref: op.Ref, Reason: err.Error()}
	}

	task, err := mutate(id)
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
			return Outcome{Op: op.Op, Status: StatusNotFound, Ref: op.Ref}
		}
		return Outcome{Op: op.Op, Status: StatusInvalid, Ref: op.Ref, Reason: apperrors.GetUserMessage(err)}
	}

	return Outcome{Op: op.Op, Status: StatusApplied, Task: task, Ref: op.Ref}
}

// synthesizeReply enumerates outcomes when the interpretation service gave no
// reply of its own.
func synthesizeReply(outcomes []Outcome) string {
	if len(outcomes) == 0 {
		return "Nothing to do."
	}

	var phrases []string
	for _, outcome := range outcomes {
		phrases = append(phrases, describeOutcome(outcome))
	}
	return strings.Join(phrases, " ")
}

func describeOutcome(outcome Outcome) string {
	switch outcome.Status {
	case StatusListed:
		return "Here are your tasks."
	case StatusNotFound:
		return fmt.Sprintf("Task %d was not found.", outcome.Ref)
	case StatusInvalid:
		return fmt.Sprintf("Could not %s: %s.", actionVerb(outcome.Op), outcome.Reason)
	}

	switch outcome.Op {
	case OpAddTask:
		return fmt.Sprintf("Added '%s'.", outcome.Task.Description)
	case OpCompleteTask:
		return fmt.Sprintf("Completed task %d.", outcome.Task.ID)
	case OpDeleteTask:
		return fmt.Sprintf("Deleted task %d.", outcome.Ref)
	case OpUpdateTask:
		return fmt.Sprintf("Updated task %d.", outcome.Task.ID)
	default:
		return "Done."
	}
}

func actionVerb(op Op) string {
	switch op {
	case OpAddTask:
		return "add the task"
	case OpCompleteTask:
		return "complete the task"
	case OpDeleteTask:
		return "delete the task"
	case OpUpdateTask:
		return "update the task"
	default:
		return "apply the operation"
	}
}
