package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tippni/tippni/internal/validate"
)

// Error is returned when backend responds with non-2xx status.
type Error struct {
	Status  int
	Message string
}

// Error ...
func (e *Error) Error() string {
	return fmt.Sprintf("tippni api responded %d: %s", e.Status, e.Message)
}

// ErrorKind ...
type ErrorKind string

const (
	// NoError ...
	NoError ErrorKind = ""
	// TransportError is a network failure, the request may not reach the server.
	TransportError ErrorKind = "transport"
	// ClientError is HTTP 4xx.
	ClientError ErrorKind = "client"
	// ServerError is HTTP 5xx.
	ServerError ErrorKind = "server"
	// ValidationError is a client-side validation failure, no request was made.
	ValidationError ErrorKind = "validation"
)

// KindOf classifies err.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}

	var verr validate.Errors
	if errors.As(err, &verr) {
		return ValidationError
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Status >= http.StatusInternalServerError {
			return ServerError
		}
		return ClientError
	}

	return TransportError
}

// Message returns human readable message of err, suitable for notification.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var verr validate.Errors
	if errors.As(err, &verr) {
		return verr.Error()
	}

	return fallback
}
