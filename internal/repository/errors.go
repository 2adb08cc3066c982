package repository

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that an entity with the given id does not exist.
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReferenceError reports a reference to an entity that does not exist,
// such as a todo pointing at an unknown label id.
type ReferenceError struct {
	Entity string
	ID     int32
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %d does not exist", e.Entity, e.ID)
}
