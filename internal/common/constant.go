// Package common contains shared constants and sentinel errors used across
// the catalog server and the mealctl client.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request identifier.
// The server echoes it back and generates one when the caller sent none.
const RequestIDHeaderName = "X-Request-ID"

// APIPrefix is the path prefix every catalog route is mounted under.
const APIPrefix = "/api"
