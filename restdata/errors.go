// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/diffeo/go-wprest/wordpress"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest is returned when the request's query string cannot be
// understood.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure: "backend" for
	// a failed backend call, "panic", or "error".
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Method names the failing backend method, if there was one.
	Method string `json:"method,omitempty"`

	// Stack holds a formatted backtrace, if the request failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}

// FromError populates an ErrorResponse based on an error value.
func (e *ErrorResponse) FromError(err error) {
	e.Error = "error"
	e.Message = err.Error()
	var callErr wordpress.ErrCall
	if errors.As(err, &callErr) {
		e.Error = "backend"
		e.Method = callErr.Method
		e.Message = callErr.Err.Error()
	}
}

// FromPanic populates an error response based on a panic.
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	n := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:n])
}

// ToError converts e back to an error for a client.
func (e *ErrorResponse) ToError() error {
	if e.Method != "" {
		return wordpress.ErrCall{Method: e.Method, Err: errors.New(e.Message)}
	}
	return errors.New(e.Message)
}
