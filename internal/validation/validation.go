// Package validation binds request data and validates it.
//
// Payloads describe their own rules (usually go-playground/validator struct
// tags) by implementing Validatable. Failures are returned as 400
// *errs.HTTPError values with one FieldError per offending field.
package validation
