// Package specialize implements the shape recognizer and the specialized
// matchers from the optimizer/dispatcher subsystem: each recognizer inspects
// the original pattern string and, if it fits a known shape, builds a
// purpose-built Matcher that is strictly faster than the general automaton
// for that shape. Recognizers never mutate the pattern string and never
// retain it past Recognize; anything a Matcher needs at match time is copied
// out during construction.
package specialize

import "github.com/CTrabant/vibrex/internal/compiler"

// Limits is the compiler's resource-limit type, re-exported here because
// every recognizer that recursively compiles a sub-pattern (advanced
// alternation's middles and regex suffixes) needs to thread the caller's
// limits through to that nested compile.
type Limits = compiler.Limits

// Matcher is the common interface every specialized matcher and the general
// automaton matcher satisfy, so the dispatcher can hold a single interface
// value on the compiled handle (the "matcher discriminator" from the data
// model is the concrete type behind this interface, decided once at compile
// time per §3's invariant).
type Matcher interface {
	IsMatch(text []byte) bool
}

// Recognizer inspects pattern and either returns a specialized Matcher with
// ok == true, or ok == false to let the dispatcher try the next recognizer
// (or, failing all of them, fall through to the general automaton). An error
// is returned only when the shape clearly applies but building the
// specialized matcher failed for a resource reason (e.g. a recursively
// compiled middle blew a limit); the dispatcher treats that the same as
// ok == false; final, authoritative errors come from the general compiler.
type Recognizer func(pattern string, limits Limits) (Matcher, bool, error)
