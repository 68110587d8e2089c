package vibrex

import (
	"github.com/CTrabant/vibrex/internal/dispatch"
)

// Regexp is a compiled pattern: the dispatcher's chosen matcher branch plus
// the original pattern text, retained only for diagnostics (String()). It is immutable after Compile returns and safe to use from
// multiple goroutines concurrently — every matcher branch allocates its
// per-call working state on the stack or from a private pool, never on the
// Regexp itself.
type Regexp struct {
	pattern string
	plan    *dispatch.Plan
}

// Compile parses pattern and selects its matcher branch under the default
// resource limits. It returns a *CompileError, never a bare error, so
// callers can inspect Pattern/Err without a type assertion.
func Compile(pattern string) (*Regexp, error) {
	return CompileConfig(pattern, DefaultConfig())
}

// CompileConfig is Compile with caller-supplied resource limits. cfg is
// validated before use; an invalid cfg fails closed with a *ConfigError
// rather than silently clamping out-of-range fields.
func CompileConfig(pattern string, cfg Config) (*Regexp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) == 0 {
		return nil, &CompileError{Pattern: pattern, Err: ErrNullPattern}
	}
	if len(pattern) > cfg.MaxPatternLen {
		return nil, &CompileError{Pattern: pattern, Err: ErrPatternTooLong}
	}

	plan, err := dispatch.Compile(pattern, cfg.limits())
	if err != nil {
		return nil, classifyCompileError(pattern, err)
	}
	return &Regexp{pattern: pattern, plan: plan}, nil
}

// MustCompile is like Compile but panics on error. Intended for patterns
// known at program build time (tests, package-level vars), not for
// compiling user-supplied or untrusted patterns.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the pattern matches anywhere in text. A nil
// Regexp matches nothing.
func (re *Regexp) MatchString(text string) bool {
	if re == nil || re.plan == nil {
		return false
	}
	return re.plan.Matcher.IsMatch([]byte(text))
}

// Match is MatchString for a byte slice, avoiding a string conversion when
// the caller already has one.
func (re *Regexp) Match(text []byte) bool {
	if re == nil || re.plan == nil {
		return false
	}
	return re.plan.Matcher.IsMatch(text)
}

// Release drops re's reference to its compiled matcher. Every matcher
// branch here is owned exclusively by its Regexp and collected by the
// garbage collector once unreferenced, so Release has no freeing to do;
// it exists for parity with the compile/match/release contract and to let
// callers write defer re.Release() without checking which runtime backs
// this package. Release(nil) and double-Release are both no-ops.
func (re *Regexp) Release() {
	if re == nil {
		return
	}
	re.plan = nil
}

// String returns the original pattern text.
func (re *Regexp) String() string {
	if re == nil {
		return ""
	}
	return re.pattern
}

// Strategy names which matcher branch the dispatcher chose for re, for use
// by an external comparison harness or test diagnostics. A released or nil
// Regexp reports "released".
func (re *Regexp) Strategy() string {
	if re == nil || re.plan == nil {
		return "released"
	}
	return re.plan.Strategy.String()
}
