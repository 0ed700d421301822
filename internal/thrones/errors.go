package thrones

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched (via errors.Is) by an ErrStatus carrying a 404.
var ErrNotFound = errors.New("character not found")

// ErrUnavailable indicates the API could not be reached at all.
type ErrUnavailable struct {
	Op  string
	Err error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s: thrones API unavailable: %v", e.Op, e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrStatus indicates the API answered with a non-2xx status.
type ErrStatus struct {
	Op   string
	Code int
	Body string
}

func (e *ErrStatus) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.Code)
}

// Is reports a 404 as ErrNotFound.
func (e *ErrStatus) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// ErrInvalidResponse indicates the body was not JSON or did not match the
// character schema.
type ErrInvalidResponse struct {
	Op   string
	Body []byte
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Op, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// IsRecoverable reports whether err came from the API round trip and is
// worth offering a retry for.
func IsRecoverable(err error) bool {
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return true
	}
	var status *ErrStatus
	if errors.As(err, &status) {
		return true
	}
	var invalid *ErrInvalidResponse
	return errors.As(err, &invalid)
}
