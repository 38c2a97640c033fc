package errors

import "strconv"

// ErrorType classifies an AppError.
//
// The type states which layer rejected the operation, not how the caller
// should react: InvalidInput and ParsingFailed come from operator supplied
// values, System and Internal from the process itself. Callers match types
// with Is, and UnderlyingType reports the innermost one.
type ErrorType int

const (
	// Unknown is the zero value; avoid using it explicitly.
	Unknown ErrorType = iota

	// Internal marks bugs and impossible states.
	Internal

	// System marks infrastructure failures (files, sockets, listeners).
	System

	// InvalidInput marks rejected configuration values or request data.
	InvalidInput

	// NotFound marks a missing resource.
	NotFound

	// ParsingFailed marks values that could not be decoded.
	ParsingFailed
)

var errorTypeNames = [...]string{
	Unknown:       "Unknown",
	Internal:      "Internal",
	System:        "System",
	InvalidInput:  "InvalidInput",
	NotFound:      "NotFound",
	ParsingFailed: "ParsingFailed",
}

// String returns the type name, or "ErrorType(n)" for undefined values.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
