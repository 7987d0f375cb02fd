package entities

import (
	"errors"
	"fmt"
)

// TransportError means the request never got a definite answer (network
// failure or timeout). The order must be left as it was.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("iugu transport error endpoint=%s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is an application-level failure reported by the billing API:
// a non-2xx status or a body that cannot be interpreted.
type RemoteError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Reason     string
}

func (e *RemoteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("iugu remote error endpoint=%s status=%d: %s", e.Endpoint, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("iugu remote error endpoint=%s status=%d", e.Endpoint, e.StatusCode)
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
