package repository

import "github.com/deppfellow/go-todo/internal/model"

// todoRow is the bare shape of a row in the todos table.
type todoRow struct {
	ID        int32
	Text      string
	Completed bool
}

// todoLabelRow is one row of todos left-joined through todo_labels to labels.
// LabelID and LabelName are nil when the todo has no labels.
type todoLabelRow struct {
	todoRow
	LabelID   *int32
	LabelName *string
}

// foldTodos collapses joined rows into todos with their labels attached.
//
// Rows for the same todo need not be adjacent. Todos come out in the order
// their id first appears, and each todo's labels in row order.
func foldTodos(rows []todoLabelRow) []model.Todo {
	todos := make([]model.Todo, 0, len(rows))
	index := make(map[int32]int, len(rows))

	for _, row := range rows {
		pos, seen := index[row.ID]
		if !seen {
			pos = len(todos)
			index[row.ID] = pos
			todos = append(todos, model.Todo{
				ID:        row.ID,
				Text:      row.Text,
				Completed: row.Completed,
				Labels:    []model.Label{},
			})
		}

		if row.LabelID != nil {
			label := model.Label{ID: *row.LabelID}
			if row.LabelName != nil {
				label.Name = *row.LabelName
			}
			todos[pos].Labels = append(todos[pos].Labels, label)
		}
	}

	return todos
}
