package repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/deppfellow/go-todo/internal/model"
)

// LabelMemoryRepository keeps labels in a map guarded by a RWMutex.
// Ids come from a counter and are never reused.
type LabelMemoryRepository struct {
	mu     sync.RWMutex
	lastID int32
	labels map[int32]model.Label
}

func NewLabelMemoryRepository() *LabelMemoryRepository {
	return &LabelMemoryRepository{labels: make(map[int32]model.Label)}
}

func (r *LabelMemoryRepository) Create(_ context.Context, name string) (model.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	label := model.Label{ID: r.lastID, Name: name}
	r.labels[label.ID] = label

	return label, nil
}

func (r *LabelMemoryRepository) All(_ context.Context) ([]model.Label, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]model.Label, 0, len(r.labels))
	for _, l := range r.labels {
		labels = append(labels, l)
	}
	slices.SortFunc(labels, func(a, b model.Label) int { return int(a.ID) - int(b.ID) })

	return labels, nil
}

// Delete removes the label. Todos still holding its id stop showing it on
// the next read.
func (r *LabelMemoryRepository) Delete(_ context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.labels[id]; !ok {
		return &NotFoundError{Entity: "label", ID: id}
	}
	delete(r.labels, id)

	return nil
}

// snapshot copies the current labels keyed by id.
func (r *LabelMemoryRepository) snapshot() map[int32]model.Label {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.labels)
}
