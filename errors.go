package main

import "fmt"

// BindError is returned when the listening socket cannot be created,
// e.g. the port is already in use or permission is denied.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("unable to bind %s: %v", e.Addr, e.Err)
}

// Cause lets errors.Cause from github.com/pkg/errors reach the socket error.
func (e *BindError) Cause() error { return e.Err }

func (e *BindError) Unwrap() error { return e.Err }
