package intent

import (
	"fmt"

	"todo-chat/internal/domain"
)

// RefNotFoundError reports a task reference that resolves to nothing, neither
// as a concrete id nor as a 1-based position. It is folded into the
// per-operation outcome, never surfaced as a transport error.
type RefNotFoundError struct {
	Ref int64
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("task reference %d does not match any task", e.Ref)
}

// Resolve maps a task reference to a concrete store id against the
// ascending-id listing. A direct id match always wins; otherwise the
// reference is read as a 1-based position into the listing.
//
// With tasks {3, 7} a ref of 3 resolves to id 3 (direct match), while a ref
// of 2 resolves to id 7 (second position).
func Resolve(ref int64, tasks []*domain.Task) (int64, error) {
	for _, task := range tasks {
		if task.ID == ref {
			return task.ID, nil
		}
	}

	if ref >= 1 && ref <= int64(len(tasks)) {
		return tasks[ref-1].ID, nil
	}

	return 0, &RefNotFoundError{Ref: ref}
}
