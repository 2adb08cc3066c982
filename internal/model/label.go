package model

// Label is a named tag that todos reference by id.
// Labels are created and deleted independently of todos.
type Label struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// CreateLabel is the payload accepted when creating a label.
type CreateLabel struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (p *CreateLabel) Validate() error {
	return validate.Struct(p)
}
