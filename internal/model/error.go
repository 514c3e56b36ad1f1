package model

import "errors"

// Application-level sentinel errors. webutil.MapErrorToStatusCode turns these
// into HTTP status codes at the edge.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotConfigured  = errors.New("database not configured")
	ErrInternalServer = errors.New("internal server error")
)

// APIError is the JSON error envelope returned by every handler.
type APIError struct {
	Message string `json:"error"`
}
