package service

import (
	"errors"
	"fmt"
	"net"
)

// UpstreamStatusError is returned when the generation service answers with
// anything other than 200 OK.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("generation service returned status %d", e.StatusCode)
}

// TransportError covers failures where no usable answer came back: the
// connection failed, the call timed out, or the body was not valid JSON.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call ran past its deadline
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
