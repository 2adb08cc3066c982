// Package handler is the HTTP layer between the router and the services.
//
// Every endpoint is a typed function wrapped by Handle or HandleNoContent,
// which bind path parameters and the JSON body, validate the payload, and
// write the result. Errors are left to the global error handler.
package handler
