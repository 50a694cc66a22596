package cli

import (
	"fmt"

	"todo-chat/internal/config"
	"todo-chat/internal/repository"
	"todo-chat/internal/repository/memory"
	"todo-chat/internal/repository/sqlite"
)

// NewRepository creates the task store selected by the configuration.
// Both backends are volatile: the sqlite backend runs on an in-memory
// database, so a restart always starts from an empty list.
func NewRepository(cfg *config.Config) (repository.Repository, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		return memory.New(), nil
	case config.StoreBackendSQLite:
		repo, err := sqlite.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
