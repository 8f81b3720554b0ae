// Package wparseerr holds the error kinds reported across wparse: a typed
// Error that carries a human-readable message plus an optional wrapped
// cause, compatible with errors.Is and errors.As.
package wparseerr

import "errors"

// Sentinel causes. Use errors.Is(err, wparseerr.ErrGrammarSyntax) and so on
// to classify a returned error without a type assertion.
var (
	// ErrGrammarSyntax means a line of a .gr file was malformed: the wrong
	// field count, a non-numeric probability, or a probability outside
	// (0, 1].
	ErrGrammarSyntax = errors.New("malformed grammar rule")

	// ErrUnknownStart means the configured start symbol has no expansions
	// in the loaded grammar.
	ErrUnknownStart = errors.New("unknown start symbol")

	// ErrIO means reading the grammar failed while a Session was being
	// loaded. Failures to open either file, or to read the sentence file,
	// are reported as the underlying os error, not as ErrIO.
	ErrIO = errors.New("I/O error")

	// ErrInternal marks an invariant violation that should never happen in
	// correct operation (tip/backpointer arity mismatch, pop on an empty
	// agenda, move-down on an absent item). Those violations are asserted
	// with panic at the point of detection, and the panic value is a plain
	// string message, not ErrInternal.
	ErrInternal = errors.New("internal invariant violation")
)

// Error is the error type returned by wparse's public entry points. It
// carries a message describing what went wrong plus the sentinel cause
// that classifies it, and is compatible with errors.Is/errors.As.
type Error struct {
	msg   string
	cause error
}

// New returns a new Error with the given message, classified as cause.
func New(cause error, msg string) *Error {
	return &Error{msg: msg, cause: cause}
}

// Error returns the message, followed by the classifying cause's message
// if one is set and distinct from msg.
func (e *Error) Error() string {
	if e.cause != nil && e.cause.Error() != e.msg {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap allows errors.Is and errors.As to see through to the classifying
// cause.
func (e *Error) Unwrap() error {
	return e.cause
}
