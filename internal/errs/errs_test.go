package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("bad", true, nil, []FieldError{{Field: "text", Error: "is required"}}, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, err.Override)
	assert.Len(t, err.Errors, 1)

	code := "TODO_LABEL_NOT_FOUND"
	err = NewBadRequestError("bad", false, &code, nil, nil)
	assert.Equal(t, code, err.Code)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Todo not found", true, nil)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Todo not found", err.Error())
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError(3)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	require.NotNil(t, err.Action)
	assert.Equal(t, ActionTypeRetry, err.Action.Type)
	assert.Equal(t, "3", err.Action.Value)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewInternalServerError())
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("a", false, nil)
	other := base.WithMessage("b")
	assert.Equal(t, "a", base.Message)
	assert.Equal(t, "b", other.Message)
	assert.Equal(t, base.Status, other.Status)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("text is empty"))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: text is empty", err.Message)
}
