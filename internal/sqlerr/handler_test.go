package sqlerr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-todo/internal/errs"
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("nope", false, nil, nil, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorNotFound(t *testing.T) {
	err := errors.Wrap(&repository.NotFoundError{Entity: "todo", ID: 3}, "service")

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Todo not found", httpErr.Message)
}

func TestHandleErrorReference(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&repository.ReferenceError{Entity: "label", ID: 9}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "TODO_LABEL_NOT_FOUND", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "labels", httpErr.Errors[0].Field)
}

func TestHandleErrorPgErrors(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "foreign key on join table",
			pgErr: &pgconn.PgError{
				Code:           "23503",
				TableName:      "todo_labels",
				ConstraintName: "todo_labels_label_id_fkey",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TODO_LABEL_NOT_FOUND",
			wantMessage: "The referenced Label does not exist",
		},
		{
			name:        "unique with column in constraint",
			pgErr:       &pgconn.PgError{Code: "23505", TableName: "labels", ConstraintName: "labels_name_key"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "LABEL_ALREADY_EXISTS",
			wantMessage: "A Label with this Name already exists",
		},
		{
			name:        "not null",
			pgErr:       &pgconn.PgError{Code: "23502", TableName: "todos", ColumnName: "text"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TODO_REQUIRED",
			wantMessage: "The Text is required",
		},
		{
			name:        "check",
			pgErr:       &pgconn.PgError{Code: "23514", TableName: "todos", ColumnName: "text"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TODO_INVALID",
			wantMessage: "The Text value does not meet required conditions",
		},
		{
			name:       "connection failure",
			pgErr:      &pgconn.PgError{Code: "08006"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("repository: %w", tt.pgErr)

			httpErr := asHTTPError(t, HandleError(err))
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, httpErr.Message)
			}
		})
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.Wrap(pgx.ErrNoRows, "scan")))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("disk on fire")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR", Message: "dup"})
	assert.Equal(t, UniqueViolation, ErrCode(errors.Wrap(converted, "ctx")))
	assert.Equal(t, Other, ErrCode(errors.New("x")))

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, converted, &pgErr)
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))
}

func TestExtractColumn(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("labels_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))

	assert.Equal(t, "label_id", extractColumnForForeignKey("todo_labels_label_id_fkey"))
	assert.Equal(t, "todo_id", extractColumnForForeignKey("todo_labels_todo_id_fkey"))
	assert.Equal(t, "", extractColumnForForeignKey("something_else"))
}
