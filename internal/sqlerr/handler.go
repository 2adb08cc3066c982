package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/go-todo/internal/errs"
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	uniqueConstraintRe  = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignConstraintRe = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)*?_([a-z0-9]+_id)_fkey$`)
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds <DOMAIN>_<ACTION> codes such as
// TODO_LABEL_NOT_FOUND from the table name and the violation.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRep, NumericOutOfRange:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		column := sqlErr.ColumnName
		if column == "" {
			column = extractColumnForForeignKey(sqlErr.ConstraintName)
		}
		return fmt.Sprintf("The referenced %s does not exist", getEntityName(sqlErr.TableName, column))

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation, InvalidTextRep, NumericOutOfRange:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<entity>_id" column, then the singular table
// name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation reads the column out of constraint names
// shaped unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueConstraintRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractColumnForForeignKey reads the column out of PostgreSQL's default
// foreign key names, e.g. todo_labels_label_id_fkey -> label_id.
func extractColumnForForeignKey(constraintName string) string {
	if matches := foreignConstraintRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a repository or driver error into an *errs.HTTPError.
//
//   - *errs.HTTPError is returned unchanged
//   - repository not-found errors become 404
//   - repository reference errors become 400
//   - PostgreSQL constraint violations become 400 with a readable message
//   - anything else becomes an opaque 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var notFound *repository.NotFoundError
	if errors.As(err, &notFound) {
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", humanizeText(notFound.Entity)), true, nil)
	}

	var refErr *repository.ReferenceError
	if errors.As(err, &refErr) {
		code := generateErrorCode("todo_labels", ForeignKeyViolation)
		message := fmt.Sprintf("The referenced %s does not exist", humanizeText(refErr.Entity))
		fieldErrors := []errs.FieldError{{
			Field: "labels",
			Error: fmt.Sprintf("%s %d does not exist", refErr.Entity, refErr.ID),
		}}
		return errs.NewBadRequestError(message, true, &code, fieldErrors, nil)
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case UniqueViolation:
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "is required",
			}}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, InvalidTextRep, NumericOutOfRange:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
