// Package errors provides the application error type used across the service.
//
// Every error is classified by an ErrorType and may wrap a cause, so callers
// can add context while keeping the original failure reachable:
//
//	err := errors.New(errors.NotFound, "configuration file not found")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.InvalidInput, "configuration rejected")
//	}
//
//	if errors.Is(err, errors.InvalidInput) {
//	    // ...
//	}
//
// Choosing a type:
//
//   - Internal: a bug or an impossible state inside the service.
//   - System: infrastructure failure (filesystem, network, listener).
//   - InvalidInput: a value supplied by an operator or a client was rejected.
//   - NotFound: the requested resource does not exist.
//   - ParsingFailed: a value could not be decoded (dates, enum codes, files).
//
// When wrapping a third-party error, pick the type describing the layer where
// it surfaced; when wrapping an AppError, usually keep its type.
//
// Formatting:
//
//   - %v and %s: "[Type] message: cause", the whole chain on one line
//   - %q: the same, quoted
//   - %+v: one line per link ("Caused by:") plus the stack captured where the
//     innermost AppError was created
//
// Inspecting a chain:
//
//   - Is: an AppError of the given type exists anywhere in the chain
//   - UnderlyingType: the type of the innermost AppError
//   - RootCause: the error that started the chain, AppError or not
//   - As: errors.As, for foreign error types
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError is the standard error value of the application.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type returns the error classification.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message returns the message without the cause chain.
func (e *AppError) Message() string {
	return e.message
}

// Stack returns the frames captured when the error was created.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter. %+v prints the cause chain and the stack
// of the innermost AppError (or of the AppError wrapping a foreign error).
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			// Only the boundary frame prints its stack, otherwise every link of
			// an AppError chain would repeat it.
			var target *AppError
			if e.cause == nil || !errors.As(e.cause, &target) {
				if len(e.stack) > 0 {
					fmt.Fprint(s, "\nStack trace:")
					for _, frame := range e.stack {
						funcName := frame.Function
						if idx := strings.LastIndex(funcName, "/"); idx != -1 {
							funcName = funcName[idx+1:]
						}
						fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, funcName)
					}
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if formatter, ok := e.cause.(fmt.Formatter); ok {
					formatter.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New creates an error of the given type.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Newf creates an error of the given type with a formatted message.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrap annotates err. It returns nil when err is nil.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrapf annotates err with a formatted message. It returns nil when err is nil.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Is reports whether any AppError in err's chain has the given type.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As is errors.As, re-exported so callers need a single import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause returns the innermost error of the chain.
func RootCause(err error) error {
	if err == nil {
		return nil
	}

	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// UnderlyingType returns the type of the innermost AppError in the chain, or
// Unknown when the chain holds none.
func UnderlyingType(err error) ErrorType {
	last := Unknown

	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			last = appErr.errType
		}
		err = errors.Unwrap(err)
	}

	return last
}
