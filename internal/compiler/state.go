// Package compiler implements the parser, fragment linker, and automaton
// arena that together turn a pattern string into a compiled Program.
//
// The automaton is a tagged union of a small, closed set of state kinds
// (literal byte, any byte, class, split, start-anchor, end-anchor, accept),
// stored in a flat arena and referenced by index rather than pointer so the
// resulting graph — which is cyclic through Split states — needs no
// ownership cycles or garbage collector cooperation.
package compiler

import "github.com/CTrabant/vibrex/internal/bitset"

// StateID indexes into an arena's state slice.
type StateID uint32

// InvalidState marks an out-arrow that has not yet been patched, or a
// missing/absent reference.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies which of the seven automaton state variants a State is.
type StateKind uint8

const (
	// KindLiteral matches one specific byte; one out-arrow.
	KindLiteral StateKind = iota
	// KindAny matches any byte; one out-arrow.
	KindAny
	// KindClass matches by byte-class membership; one out-arrow.
	KindClass
	// KindSplit is an epsilon transition with two out-arrows, used for
	// *, +, ?, | and empty alternatives (whose two arrows are patched to
	// the same target).
	KindSplit
	// KindStartAnchor is an epsilon transition permitted only at offset 0.
	KindStartAnchor
	// KindEndAnchor is an epsilon transition permitted only at len(text).
	KindEndAnchor
	// KindAccept is the terminal state; it has no out-arrows.
	KindAccept
)

// State is a single automaton node. Which fields are meaningful depends on
// Kind; unused fields are zero.
type State struct {
	Kind  StateKind
	Byte  byte             // KindLiteral
	Class *bitset.ByteClass // KindClass
	Out   StateID          // KindLiteral, KindAny, KindClass, KindStartAnchor, KindEndAnchor, KindSplit (branch 1)
	Out2  StateID          // KindSplit (branch 2)
}
