package d

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is the concrete type behind every non-panic failure the core
// returns. Callers compare kinds with Is (built on errors.As) rather than
// string matching.
type Error struct {
	kind Kind
	msg  string
	err  error // optional wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Cause implements the github.com/pkg/errors Causer interface.
func (e *Error) Cause() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// New builds a *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrapf builds a *Error of the given kind, chaining an underlying cause.
func Wrapf(cause error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), err: cause}
}

// Is reports whether err is (or wraps) a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.kind == kind
	}
	return false
}

type wrappedError struct {
	msg   string
	cause error
}

func (w wrappedError) Error() string { return w.msg + ": " + w.cause.Error() }
func (w wrappedError) Cause() error  { return w.cause }

// Wrap lifts err into something carrying a Cause(), the way
// github.com/dolthub/dolt's go/store/d package does so call sites can
// recover the original error after a panic/recover round-trip. Wrapping an
// already-wrapped error is idempotent; wrapping nil returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if we, ok := err.(wrappedError); ok {
		return we
	}
	return wrappedError{msg: err.Error(), cause: err}
}

// Unwrap returns the innermost cause of err, or err itself if it carries no
// Cause().
func Unwrap(err error) error {
	type causer interface{ Cause() error }
	for {
		c, ok := err.(causer)
		if !ok {
			return err
		}
		cause := c.Cause()
		if cause == nil {
			return err
		}
		err = cause
	}
}
