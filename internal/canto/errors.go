package canto

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the account domain or the app token is
	// missing; no network I/O is attempted in that state.
	ErrNotConfigured = errors.New("canto: domain and app token are not configured")
	ErrEmptyResponse = errors.New("canto: empty response body")
	ErrInvalidJSON   = errors.New("canto: response body is not valid JSON")
)

// HTTPError is a non-200 upstream status.
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("canto: unexpected HTTP status %d", e.Code)
}

// UpstreamError is an error the upstream reported inside an otherwise valid
// 200 response body.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("canto: upstream error: %s", e.Message)
}

// TransportError wraps a network-level failure (connection refused,
// timeout). The client performs no retries; retrying is a caller concern.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("canto: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
