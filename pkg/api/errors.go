package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies a failed request.
type ErrorKind string

// Error kinds.
const (
	// KindTransport means the request never produced an HTTP response:
	// network unreachable, connection refused, context cancelled.
	KindTransport ErrorKind = "transport"

	// KindServer means the backend answered with a non-2xx status.
	KindServer ErrorKind = "server"

	// KindShape means a 2xx response whose body did not match the expected
	// envelope. Normalization usually absorbs these; the kind exists for the
	// few places that must report them.
	KindShape ErrorKind = "shape"

	// KindUnauthenticated means an operation requiring a credential was
	// invoked with none present. No request is issued in that case.
	KindUnauthenticated ErrorKind = "unauthenticated"
)

// RequestError is the single error type surfaced by request gateways.
// Message is always suitable for direct display.
type RequestError struct {
	Kind    ErrorKind
	Status  int // HTTP status, 0 for non-HTTP failures
	Message string
	cause   error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.cause }

// Is matches two RequestErrors by kind, so callers can test against the
// sentinel values below with errors.Is.
func (e *RequestError) Is(target error) bool {
	var other *RequestError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUnauthenticated = &RequestError{Kind: KindUnauthenticated, Message: "not logged in"}
	ErrTransport       = &RequestError{Kind: KindTransport, Message: "request failed"}
)

// TransportError wraps a failure that happened before any HTTP response.
func TransportError(err error) *RequestError {
	return &RequestError{Kind: KindTransport, Message: err.Error(), cause: err}
}

// ServerError builds a RequestError from a non-2xx response body, extracting
// the envelope's message field when present and falling back to the status.
func ServerError(status int, body []byte) *RequestError {
	var env Envelope
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		return &RequestError{Kind: KindServer, Status: status, Message: env.Message}
	}
	return &RequestError{
		Kind:    KindServer,
		Status:  status,
		Message: fmt.Sprintf("request failed: status %d", status),
	}
}

// ErrorMessage returns the display message for any error, preferring the
// extracted RequestError message.
func ErrorMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
