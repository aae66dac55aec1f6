package bitcore

import (
	"errors"
	"fmt"
)

// Predefined error types for robust error handling
var (
	ErrInvalidConfig   = errors.New("invalid serial configuration")
	ErrInvalidBaudRate = errors.New("invalid baud rate")
	ErrNotConnected    = errors.New("serial device not connected")
	ErrTimeout         = errors.New("operation timed out")
	ErrEnumeration     = errors.New("port enumeration failed")
)

// ConnectError reports a failed attempt to open the underlying device.
// It wraps the transport-level cause.
type ConnectError struct {
	Device string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Device, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// IOError reports a read or write whose retry budget is exhausted.
// Attempts is the total number of attempts made, including the first.
type IOError struct {
	Op       string // "read" or "write"
	Attempts int
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
