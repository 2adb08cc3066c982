package repository

import (
	"testing"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func joined(id int32, text string, completed bool, labelID *int32, labelName *string) todoLabelRow {
	return todoLabelRow{
		todoRow:   todoRow{ID: id, Text: text, Completed: completed},
		LabelID:   labelID,
		LabelName: labelName,
	}
}

func TestFoldTodos(t *testing.T) {
	tests := []struct {
		name string
		rows []todoLabelRow
		want []model.Todo
	}{
		{
			name: "no rows",
			rows: nil,
			want: []model.Todo{},
		},
		{
			name: "todo without labels",
			rows: []todoLabelRow{joined(1, "a", false, nil, nil)},
			want: []model.Todo{{ID: 1, Text: "a", Labels: []model.Label{}}},
		},
		{
			name: "one todo many labels",
			rows: []todoLabelRow{
				joined(1, "a", true, ptr(int32(1)), ptr("x")),
				joined(1, "a", true, ptr(int32(2)), ptr("y")),
			},
			want: []model.Todo{{
				ID: 1, Text: "a", Completed: true,
				Labels: []model.Label{{ID: 1, Name: "x"}, {ID: 2, Name: "y"}},
			}},
		},
		{
			name: "non-adjacent rows keep first-seen order",
			rows: []todoLabelRow{
				joined(2, "b", false, ptr(int32(1)), ptr("x")),
				joined(1, "a", false, nil, nil),
				joined(2, "b", false, ptr(int32(3)), ptr("z")),
			},
			want: []model.Todo{
				{ID: 2, Text: "b", Labels: []model.Label{{ID: 1, Name: "x"}, {ID: 3, Name: "z"}}},
				{ID: 1, Text: "a", Labels: []model.Label{}},
			},
		},
		{
			name: "label id without name",
			rows: []todoLabelRow{joined(4, "d", false, ptr(int32(9)), nil)},
			want: []model.Todo{{ID: 4, Text: "d", Labels: []model.Label{{ID: 9}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, foldTodos(tt.rows))
		})
	}
}

func TestFoldTodosLabelsNeverNil(t *testing.T) {
	for _, todo := range foldTodos([]todoLabelRow{joined(1, "a", false, nil, nil), joined(2, "b", false, nil, nil)}) {
		assert.NotNil(t, todo.Labels)
	}
}
