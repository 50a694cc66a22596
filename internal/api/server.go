// Package api exposes the task store and the chat interpretation flow over
// HTTP, plus the bundled single-page UI.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "todo-chat/internal/errors"
	"todo-chat/internal/intent"
	"todo-chat/internal/interpreter"
	"todo-chat/internal/services"
	"todo-chat/internal/validation"
)

// Server is the HTTP API server.
type Server struct {
	tasks     services.TaskService
	executor  *intent.Executor
	interp    interpreter.Interpreter
	validator *validation.Validator
	logger    *zap.Logger
	staticDir string
	mux       *http.ServeMux
}

// New creates a new Server. A nil validator falls back to default limits and
// a nil logger disables logging.
func New(tasks services.TaskService, executor *intent.Executor, interp interpreter.Interpreter, validator *validation.Validator, staticDir string, logger *zap.Logger) *Server {
	if validator == nil {
		validator = validation.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		tasks:     tasks,
		executor:  executor,
		interp:    interp,
		validator: validator,
		logger:    logger,
		staticDir: staticDir,
		mux:       http.NewServeMux(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withRequestLogging(s.mux).ServeHTTP(w, r)
}

func (s *Server) routes() {
	// Tasks
	s.mux.HandleFunc("GET /api/tasks", s.handleTaskList)
	s.mux.HandleFunc("POST /api/tasks", s.handleTaskCreate)
	s.mux.HandleFunc("GET /api/tasks/{id}", s.handleTaskGet)
	s.mux.HandleFunc("PUT /api/tasks/{id}", s.handleTaskUpdate)
	s.mux.HandleFunc("POST /api/tasks/{id}/complete", s.handleTaskComplete)
	s.mux.HandleFunc("DELETE /api/tasks/{id}", s.handleTaskDelete)

	// Chat
	s.mux.HandleFunc("POST /api/ai/interpret", s.handleInterpret)

	// System
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Static UI
	s.mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeAppError maps the error taxonomy onto HTTP status codes.
func (s *Server) writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation, apperrors.ErrorTypeInvalidInput:
			status = http.StatusBadRequest
		case apperrors.ErrorTypeNotFound:
			status = http.StatusNotFound
		}
	}
	if apperrors.ShouldLogError(err) {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeError(w, status, apperrors.GetUserMessage(err))
}
