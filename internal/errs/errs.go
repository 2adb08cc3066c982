// Package errs defines the error shapes returned to API clients.
//
// Every failed request is answered with an HTTPError serialized as JSON, so
// clients always see the same structure: a machine-friendly code, a message,
// the status, and optional per-field validation errors.
package errs
