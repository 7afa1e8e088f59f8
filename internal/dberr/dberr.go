// Package dberr holds the error taxonomy shared by the store layers and the facades.
//
// Every failure surfaced to a caller is a *Error whose Kind is one of the sentinel
// values below, so callers branch with errors.Is and still reach the driver error
// with errors.As.
package dberr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the settings are absent or malformed.
	ErrConfiguration = errors.New("configuration error")
	// ErrConnectivity means the store is unreachable or rejected the credentials.
	ErrConnectivity = errors.New("connectivity error")
	// ErrQuery means the query was malformed or violated a constraint.
	ErrQuery = errors.New("query error")
	// ErrNotFound means a read matched nothing where at least one record was required.
	ErrNotFound = errors.New("not found")
	// ErrMalformedRecord means a record does not have the shape its mapper expects.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrValidation means user input was rejected.
	ErrValidation = errors.New("validation error")
)

// Error ties a failure to its kind and to the operation that produced it.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.Error()
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New wraps err with the given kind. A nil err yields a bare kind error for op.
func New(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Configuration builds an ErrConfiguration error with a formatted cause.
func Configuration(op, format string, args ...any) *Error {
	return New(ErrConfiguration, op, fmt.Errorf(format, args...))
}

// Connectivity wraps err as an ErrConnectivity error.
func Connectivity(op string, err error) *Error {
	return New(ErrConnectivity, op, err)
}

// Query wraps err as an ErrQuery error.
func Query(op string, err error) *Error {
	return New(ErrQuery, op, err)
}

// NotFound builds an ErrNotFound error naming what was missing.
func NotFound(op, what string) *Error {
	return New(ErrNotFound, op, fmt.Errorf("%s not found", what))
}

// Malformed builds an ErrMalformedRecord error with a formatted cause.
func Malformed(op, format string, args ...any) *Error {
	return New(ErrMalformedRecord, op, fmt.Errorf(format, args...))
}

// Validation builds an ErrValidation error with a formatted cause.
func Validation(op, format string, args ...any) *Error {
	return New(ErrValidation, op, fmt.Errorf(format, args...))
}

// KindOf reports which taxonomy kind err belongs to, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrConfiguration, ErrConnectivity, ErrQuery, ErrNotFound, ErrMalformedRecord, ErrValidation} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
