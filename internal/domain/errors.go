package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat marks structural problems in the equation text itself.
	ErrFormat = errors.New("invalid equation format")

	// ErrParse marks expressions the evaluator could not compile.
	ErrParse = errors.New("cannot parse expression")

	// ErrEval marks a failed evaluation at a single sample point.
	ErrEval = errors.New("cannot evaluate expression")
)

// FormatError reports an equation whose shape does not match any mode.
type FormatError struct {
	Equation string
	Reason   string
}

func (e *FormatError) Error() string { return e.Reason }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ParseError wraps an evaluator compile failure.
type ParseError struct {
	Expression string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Expression, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// EvalError wraps a per-point evaluation failure. It never crosses the
// trace evaluator; the point is recorded as missing instead.
type EvalError struct {
	Expression string
	Err        error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate %q: %v", e.Expression, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

func (e *EvalError) Is(target error) bool { return target == ErrEval }

// ErrorRecord is one failed equation of a batch.
type ErrorRecord struct {
	Equation string `json:"equation"`
	Message  string `json:"message"`
}

func (r ErrorRecord) String() string {
	return fmt.Sprintf("Could not plot %q: %s", r.Equation, r.Message)
}
