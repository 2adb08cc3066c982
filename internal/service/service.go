// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// payloads from the handlers, calls the repositories, and records each
// mutation in the request-scoped log.
package service
