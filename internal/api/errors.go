package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingField is returned when the response lacks verses[0].text_uthmani_tajweed.
var ErrMissingField = errors.New("response missing verses[0].text_uthmani_tajweed")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "bad status: " + e.Status
	}
	return fmt.Sprintf("bad status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// formatError wraps a body that could not be decoded.
type formatError struct {
	err error
}

func (e *formatError) Error() string { return "failed to decode response: " + e.err.Error() }
func (e *formatError) Unwrap() error { return e.err }

// transportError wraps a failed round trip.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "failed to download: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// ErrorKind classifies a per-verse failure.
type ErrorKind string

const (
	KindTransport  ErrorKind = "transport"
	KindHTTP       ErrorKind = "http"
	KindFormat     ErrorKind = "format"
	KindFilesystem ErrorKind = "filesystem"
)

// Kind classifies err. Errors that did not come from the client
// are attributed to the filesystem.
func Kind(err error) ErrorKind {
	var statusErr *StatusError
	var fmtErr *formatError
	var trErr *transportError
	switch {
	case errors.As(err, &statusErr):
		return KindHTTP
	case errors.Is(err, ErrMissingField), errors.As(err, &fmtErr):
		return KindFormat
	case errors.As(err, &trErr):
		return KindTransport
	default:
		return KindFilesystem
	}
}
