package model

import (
	"errors"
	"fmt"
)

var (
	// ErrPageNotFound is returned when the target page id is unknown.
	ErrPageNotFound = errors.New("page not found")
	// ErrAuthentication is returned when Confluence rejects the credentials.
	ErrAuthentication = errors.New("authentication rejected")
)

// TransportError is returned when the node cannot be reached.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("connect to node %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamStatusError is returned when the node answers with a non-200 status.
type UpstreamStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("node %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("node %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}
