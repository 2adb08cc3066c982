// Package sqlerr translates database driver errors into API errors.
//
// PostgreSQL reports failures as SQLSTATE codes. This package maps the ones
// a client can act on (constraint violations) to 400 responses with a
// readable message, and everything else to an opaque 500.
package sqlerr

// Code is a coarse category for a PostgreSQL SQLSTATE.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidTextRep      Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
)

// Severity mirrors the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized view of a *pgconn.PgError.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return string(e.Severity) + ": " + e.Message + " (SQLSTATE " + e.DatabaseCode + ")"
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidTextRep
	case "22003":
		return NumericOutOfRange
	default:
		return Other
	}
}

// MapSeverity maps the severity string reported by PostgreSQL.
// Unknown values are treated as errors.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
