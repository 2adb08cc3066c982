package repository

import (
	"fmt"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/deppfellow/go-todo/internal/server"
)

// Repositories is a container for all repository instances.
//
// Services receive the whole container so the wiring stays in one place.
type Repositories struct {
	Todo  TodoRepository
	Label LabelRepository
}

// NewRepositories builds the repositories for the configured backend.
//
// The postgres backend shares the server's connection pool. The memory
// backend starts empty and lives as long as the process.
func NewRepositories(s *server.Server) (*Repositories, error) {
	switch s.Config.Repository.Backend {
	case config.BackendPostgres:
		if s.DB == nil {
			return nil, fmt.Errorf("repository backend %q requires a database connection", config.BackendPostgres)
		}
		return &Repositories{
			Todo:  NewTodoPostgresRepository(s.DB.Pool),
			Label: NewLabelPostgresRepository(s.DB.Pool),
		}, nil

	case config.BackendMemory:
		labels := NewLabelMemoryRepository()
		return &Repositories{
			Todo:  NewTodoMemoryRepository(labels),
			Label: labels,
		}, nil

	default:
		return nil, fmt.Errorf("unknown repository backend %q", s.Config.Repository.Backend)
	}
}
