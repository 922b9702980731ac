package vlsim

import "github.com/pkg/errors"

// FatalError marks a structural violation of the supported Verilog subset:
// timing control on an assign, a non-identifier event expression, a
// DelayControl, or a case with neither a matching item nor a
// default. These signify a bug in whatever produced the AST and are never
// recovered from inside the core itself — they propagate as a panic
// carrying this type, wrapped with github.com/pkg/errors for a stack
// trace, and are only ever recovered at the outermost public operation
// boundary (interpreter.go), which re-panics after logging.
type FatalError struct {
	cause error
}

func (e *FatalError) Error() string { return e.cause.Error() }

// Cause lets github.com/pkg/errors callers unwrap to the wrapped error.
func (e *FatalError) Cause() error { return e.cause }

func fatalf(format string, args ...interface{}) {
	panic(&FatalError{cause: errors.Errorf(format, args...)})
}
