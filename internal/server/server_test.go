package server

import (
	"context"
	"testing"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithMemoryBackendSkipsDatabase(t *testing.T) {
	cfg := &config.Config{
		Primary:    config.Primary{Env: "test"},
		Repository: config.RepositoryConfig{Backend: config.BackendMemory},
	}
	log := zerolog.Nop()

	s, err := New(cfg, &log, nil)
	require.NoError(t, err)
	assert.Nil(t, s.DB)
}

func TestStartRequiresSetup(t *testing.T) {
	log := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &log}

	require.Error(t, s.Start())
	require.NoError(t, s.Shutdown(context.Background()))
}
