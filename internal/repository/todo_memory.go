package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/deppfellow/go-todo/internal/model"
)

type storedTodo struct {
	todoRow
	labelIDs []int32
}

// TodoMemoryRepository keeps todos in process memory.
//
// Each todo stores the ids of its labels, mirroring the join table. Ids are
// resolved through the label store on every read, so a deleted label drops
// out of every todo. The label snapshot is always taken before r.mu is
// acquired; no method holds both locks.
type TodoMemoryRepository struct {
	labels *LabelMemoryRepository

	mu     sync.RWMutex
	lastID int32
	todos  map[int32]storedTodo
}

func NewTodoMemoryRepository(labels *LabelMemoryRepository) *TodoMemoryRepository {
	return &TodoMemoryRepository{
		labels: labels,
		todos:  make(map[int32]storedTodo),
	}
}

func (r *TodoMemoryRepository) Create(_ context.Context, payload model.CreateTodo) (model.Todo, error) {
	known := r.labels.snapshot()
	labelIDs := model.DistinctIDs(payload.Labels)
	if err := checkLabels(known, labelIDs); err != nil {
		return model.Todo{}, err
	}

	r.mu.Lock()
	r.lastID++
	stored := storedTodo{
		todoRow:  todoRow{ID: r.lastID, Text: payload.Text},
		labelIDs: labelIDs,
	}
	r.todos[stored.ID] = stored
	r.mu.Unlock()

	return materialize(stored, known), nil
}

func (r *TodoMemoryRepository) Find(_ context.Context, id int32) (model.Todo, error) {
	known := r.labels.snapshot()

	r.mu.RLock()
	stored, ok := r.todos[id]
	r.mu.RUnlock()

	if !ok {
		return model.Todo{}, &NotFoundError{Entity: "todo", ID: id}
	}

	return materialize(stored, known), nil
}

func (r *TodoMemoryRepository) All(_ context.Context) ([]model.Todo, error) {
	known := r.labels.snapshot()

	r.mu.RLock()
	stored := make([]storedTodo, 0, len(r.todos))
	for _, t := range r.todos {
		stored = append(stored, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(stored, func(a, b storedTodo) int { return int(b.ID) - int(a.ID) })

	todos := make([]model.Todo, 0, len(stored))
	for _, t := range stored {
		todos = append(todos, materialize(t, known))
	}

	return todos, nil
}

func (r *TodoMemoryRepository) Update(_ context.Context, id int32, payload model.UpdateTodo) (model.Todo, error) {
	known := r.labels.snapshot()

	var labelIDs []int32
	if payload.Labels != nil {
		labelIDs = model.DistinctIDs(*payload.Labels)
		if err := checkLabels(known, labelIDs); err != nil {
			return model.Todo{}, err
		}
	}

	r.mu.Lock()
	stored, ok := r.todos[id]
	if !ok {
		r.mu.Unlock()
		return model.Todo{}, &NotFoundError{Entity: "todo", ID: id}
	}

	if payload.Text != nil {
		stored.Text = *payload.Text
	}
	if payload.Completed != nil {
		stored.Completed = *payload.Completed
	}
	if payload.Labels != nil {
		stored.labelIDs = labelIDs
	}
	r.todos[id] = stored
	r.mu.Unlock()

	return materialize(stored, known), nil
}

func (r *TodoMemoryRepository) Delete(_ context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return &NotFoundError{Entity: "todo", ID: id}
	}
	delete(r.todos, id)

	return nil
}

func checkLabels(known map[int32]model.Label, ids []int32) error {
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return &ReferenceError{Entity: "label", ID: id}
		}
	}
	return nil
}

// materialize builds the public Todo, resolving label ids in ascending order
// and skipping ids whose label no longer exists.
func materialize(t storedTodo, known map[int32]model.Label) model.Todo {
	ids := slices.Clone(t.labelIDs)
	slices.Sort(ids)

	labels := make([]model.Label, 0, len(ids))
	for _, id := range ids {
		if l, ok := known[id]; ok {
			labels = append(labels, l)
		}
	}

	return model.Todo{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Labels:    labels,
	}
}
