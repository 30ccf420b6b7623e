// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wordpress

import "fmt"

// ErrNoSuchRecord is returned by Blog implementations that can tell
// an unknown identifier apart from other failures.
type ErrNoSuchRecord struct {
	Kind string
	ID   string
}

func (err ErrNoSuchRecord) Error() string {
	return fmt.Sprintf("No such %v %v", err.Kind, err.ID)
}

// ErrCall wraps a failure of a single backend method call.
type ErrCall struct {
	Method string
	Err    error
}

func (err ErrCall) Error() string {
	return fmt.Sprintf("%v: %v", err.Method, err.Err)
}

// Unwrap returns the underlying transport or decoding error.
func (err ErrCall) Unwrap() error {
	return err.Err
}
