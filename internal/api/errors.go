package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call per the client's error taxonomy.
type Kind int

const (
	// KindApplication means the server responded but flagged failure.
	KindApplication Kind = iota
	// KindTransport means the request never completed.
	KindTransport
	// KindDecode means the response payload was malformed.
	KindDecode
)

// Error is the failure of one API call. Message carries the
// server-supplied error text when the server provided one; screens
// fall back to a localized default otherwise.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.err != nil:
		return e.err.Error()
	default:
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf extracts the failure kind. Non-API errors (local validation,
// file reads) report false.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// ServerMessage returns the server-supplied error text, if any.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
