package model

// Todo is a task item together with the labels attached to it.
//
// Labels is derived from the todo_labels relation at read time and is never
// nil, so it always serializes as a JSON array.
type Todo struct {
	ID        int32   `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels"`
}

// CreateTodo is the payload accepted when creating a todo.
//
// Labels holds ids of existing labels. Duplicates are collapsed by the
// repository; an unknown id fails the whole create.
type CreateTodo struct {
	Text   string  `json:"text" validate:"required,min=1,max=100"`
	Labels []int32 `json:"labels" validate:"dive,min=1"`
}

func (p *CreateTodo) Validate() error {
	return validate.Struct(p)
}

// UpdateTodo is a partial update. A nil field means "leave unchanged".
//
// For Labels, a JSON null or a missing key leaves the label set alone while
// an empty array clears it.
type UpdateTodo struct {
	Text      *string  `json:"text" validate:"omitnil,min=1,max=100"`
	Completed *bool    `json:"completed"`
	Labels    *[]int32 `json:"labels" validate:"omitnil,dive,min=1"`
}

func (p *UpdateTodo) Validate() error {
	return validate.Struct(p)
}

// Apply merges the present fields of p into t and returns the result.
// The label set is not touched; it lives in the join relation.
func (p *UpdateTodo) Apply(t Todo) Todo {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
