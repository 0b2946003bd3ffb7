package helpers

import (
	"errors"
	"fmt"
)

type CallerErrorKind string

const (
	ErrorKindConnection CallerErrorKind = "connection"
	ErrorKindTimeout    CallerErrorKind = "timeout"
	ErrorKindInvalidUrl CallerErrorKind = "invalid-url"
	ErrorKindHttpStatus CallerErrorKind = "http-status"
	ErrorKindDecode     CallerErrorKind = "decode"
)

// CallerError is the single error type returned by the HttpCaller. Every
// failure mode of a call is classified into one of the kinds above so the
// apiclient layer can branch on it without string matching.
type CallerError struct {
	Kind       CallerErrorKind
	StatusCode int
	Reason     string
	Err        error
}

func (e *CallerError) Error() string {
	switch e.Kind {
	case ErrorKindHttpStatus:
		return fmt.Sprintf("unexpected status %d %s", e.StatusCode, e.Reason)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("%s error: %s", e.Kind, e.Reason)
	}
}

func (e *CallerError) Unwrap() error {
	return e.Err
}

// IsCallerErrorKind reports whether err is (or wraps) a CallerError of the
// given kind.
func IsCallerErrorKind(err error, kind CallerErrorKind) bool {
	var callerErr *CallerError
	if errors.As(err, &callerErr) {
		return callerErr.Kind == kind
	}
	return false
}
