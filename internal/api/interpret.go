package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"todo-chat/internal/domain"
	"todo-chat/internal/intent"
	"todo-chat/internal/interpreter"
)

type interpretRequest struct {
	Message string `json:"message"`
}

type interpretResponse struct {
	FunctionCall []map[string]any `json:"function_call"`
	Reply        string           `json:"reply"`
	Results      []intent.Outcome `json:"results,omitempty"`
	Tasks        []*domain.Task   `json:"tasks,omitempty"`
}

// handleInterpret is the chat endpoint. The message is interpreted first,
// before any store access; mutations only happen here, in the executor,
// regardless of what the upstream reply claims. Interpretation failures are
// folded into a conversational fallback, so the endpoint answers 200 for
// everything except an unreadable request body.
func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	var result *interpreter.IntentResult
	if !s.validator.IsValidMessageLength(req.Message) {
		result = interpreter.Fallback("message is too long")
	} else {
		result = s.interp.Interpret(r.Context(), req.Message)
	}

	ops := intent.Normalize(result.FunctionCall)
	execution := s.executor.Execute(r.Context(), ops, result.Reply)

	response := interpretResponse{
		FunctionCall: intent.Descriptors(ops),
		Reply:        execution.Reply,
		Results:      execution.Outcomes,
	}

	if execution.ListRequested {
		tasks, err := s.tasks.List(r.Context())
		if err != nil {
			s.logger.Error("listing tasks for chat response failed", zap.Error(err))
		} else {
			if tasks == nil {
				tasks = []*domain.Task{}
			}
			response.Tasks = tasks
		}
	}

	writeJSON(w, http.StatusOK, response)
}
