// Package client talks to the meal catalog API.
//
// Client is the transport-agnostic contract the CLI depends on; HTTPClient
// implements it over the REST endpoints under /api.
//
// # Error Handling
//
// A 404 answer maps to common.ErrorNotFound, any other non-2xx answer to
// common.ErrorUnexpectedStatus (wrapped with the status code and server
// message), and transport failures to ErrUnavailable. Match them with
// errors.Is.
package client
