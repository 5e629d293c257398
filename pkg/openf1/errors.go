package openf1

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyResult is returned when a query that must yield at least one record
// yields none.
var ErrEmptyResult = errors.New("no records returned")

// RemoteRequestError is returned for any non-200 response. Only the status
// code is kept; the body is not assumed to carry a usable message.
type RemoteRequestError struct {
	Endpoint   string
	StatusCode int
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("request to %q failed with status %d", e.Endpoint, e.StatusCode)
}

// MalformedResponseError is returned when a 200 response cannot be decoded
// into the expected records.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %q: %s", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
