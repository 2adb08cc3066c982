package service

import (
	"context"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/rs/zerolog"
)

type LabelService struct {
	server *server.Server
	repo   repository.LabelRepository
}

func NewLabelService(s *server.Server, repo repository.LabelRepository) *LabelService {
	return &LabelService{
		server: s,
		repo:   repo,
	}
}

func (s *LabelService) Create(ctx context.Context, payload model.CreateLabel) (model.Label, error) {
	label, err := s.repo.Create(ctx, payload.Name)
	if err != nil {
		return model.Label{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int32("label_id", label.ID).
		Str("label_name", label.Name).
		Msg("label created")

	return label, nil
}

func (s *LabelService) List(ctx context.Context) ([]model.Label, error) {
	return s.repo.All(ctx)
}

// Delete removes the label; todos that carried it simply lose it.
func (s *LabelService) Delete(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int32("label_id", id).Msg("label deleted")
	return nil
}
