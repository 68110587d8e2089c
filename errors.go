package vibrex

import (
	"errors"
	"fmt"

	"github.com/CTrabant/vibrex/internal/compiler"
)

// Sentinel errors a caller can match against with errors.Is. CompileError
// wraps one of these (or, for a resource-limit failure, the compiler's own
// message) together with the offending pattern.
var (
	// ErrNullPattern is returned for an empty pattern string.
	ErrNullPattern = errors.New("null pattern")

	// ErrPatternTooLong is returned when a pattern exceeds the configured
	// length cap, a security limit rather than a syntax complaint.
	ErrPatternTooLong = errors.New("pattern too long (exceeds security limit)")

	// ErrSyntax covers unbalanced brackets/parens, trailing escapes, bad
	// character classes, and stray or stacked quantifiers.
	ErrSyntax = errors.New("invalid pattern syntax")

	// ErrResourceLimit covers recursion depth, alternation count, and
	// automaton arena capacity caps other than the raw pattern length.
	ErrResourceLimit = errors.New("pattern exceeds a resource limit")
)

// CompileError wraps a Compile failure with the pattern that caused it.
// Error() produces the short diagnostic strings named by the matching
// contract; Unwrap() exposes the sentinel for errors.Is.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	if e.Err == ErrNullPattern || e.Err == ErrPatternTooLong {
		return e.Err.Error()
	}
	return fmt.Sprintf("vibrex: compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// classifyCompileError maps an internal compiler error onto the public
// sentinel taxonomy so callers never need to import internal/compiler.
func classifyCompileError(pattern string, err error) *CompileError {
	var cerr *compiler.Error
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case compiler.KindResourceLimit:
			return &CompileError{Pattern: pattern, Err: fmt.Errorf("%w: %s", ErrResourceLimit, cerr.Message)}
		default:
			return &CompileError{Pattern: pattern, Err: fmt.Errorf("%w: %s", ErrSyntax, cerr.Message)}
		}
	}
	return &CompileError{Pattern: pattern, Err: err}
}
