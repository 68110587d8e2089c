// Package matcher implements the general matcher: a two-set Thompson NFA
// simulation that is the correctness floor for every pattern the compiler
// can produce, plus the start-position strategy that picks which offsets of
// the input are worth simulating from.
//
// Per the concurrency model, nothing here is stored on the compiled
// automaton itself. Each call to IsMatch allocates (or, via the Handle's
// pool, reuses) a per-call frame holding the two working state sets and the
// step counter ("mark") used to deduplicate states within one step. A
// Handle is therefore safe to match concurrently from multiple goroutines
// as long as each call gets its own frame, which is exactly what IsMatch
// guarantees.
package matcher

import (
	"sync"

	"github.com/CTrabant/vibrex/internal/compiler"
	"github.com/CTrabant/vibrex/internal/litscan"
)

// Handle wraps a compiled Program with the precomputed start-position hints
// from §4.3 (literal prefix + Boyer-Moore table, or a single first-required
// byte) and a pool of reusable per-call frames sized to the program's state
// count.
type Handle struct {
	Prog *compiler.Program

	prefix    []byte
	bm        *litscan.BMSearcher
	firstByte byte
	haveFirst bool

	pool sync.Pool
}

// NewHandle builds a Handle for prog. prefixHint and firstByte come
// from analyzing the original pattern string (the parser discards that
// string once the automaton is built, so these are threaded in from the
// caller rather than rediscovered here).
func NewHandle(prog *compiler.Program, prefixHint []byte, firstByte byte, haveFirstByte bool) *Handle {
	h := &Handle{Prog: prog, firstByte: firstByte, haveFirst: haveFirstByte}
	if len(prefixHint) >= 3 {
		h.prefix = prefixHint
		h.bm = litscan.NewBMSearcher(prefixHint)
	}
	n := prog.NumStates()
	h.pool.New = func() interface{} { return newFrame(n) }
	return h
}

// frame holds the two working state sets for one in-flight match call.
type frame struct {
	curr, next *stateSet
}

func newFrame(n int) *frame {
	return &frame{curr: newStateSet(n), next: newStateSet(n)}
}

// IsMatch reports whether the pattern matches somewhere in text, per the
// start-position strategy: anchored patterns only try offset 0; patterns
// with a long enough literal prefix use Boyer-Moore to find candidate
// starts; patterns with a known first byte scan for it; everything else
// tries every offset in order. Any found accept short-circuits.
func (h *Handle) IsMatch(text []byte) bool {
	f := h.pool.Get().(*frame)
	defer h.pool.Put(f)

	prog := h.Prog
	switch {
	case prog.AnchoredStart:
		return runFrom(f, prog, text, 0)

	case h.bm != nil:
		from := 0
		for {
			idx, ok := h.bm.Next(text, from)
			if !ok {
				return false
			}
			if runFrom(f, prog, text, idx) {
				return true
			}
			from = idx + 1
		}

	case h.haveFirst:
		from := 0
		for from <= len(text) {
			idx := litscan.IndexByte(text[from:], h.firstByte)
			if idx < 0 {
				return false
			}
			pos := from + idx
			if runFrom(f, prog, text, pos) {
				return true
			}
			from = pos + 1
		}
		return false

	default:
		for pos := 0; pos <= len(text); pos++ {
			if runFrom(f, prog, text, pos) {
				return true
			}
		}
		return false
	}
}

// runFrom tries to reach Accept by simulating the automaton starting at the
// absolute offset start in text. Anchors are evaluated against the
// absolute position, so a "^" only ever succeeds when start == 0, and "$"
// only when the simulation has consumed all of text, regardless of where
// the simulation itself began.
func runFrom(f *frame, prog *compiler.Program, text []byte, start int) bool {
	curr, next := f.curr, f.next
	curr.reset()
	addClosure(curr, prog, prog.Start, start, len(text))

	pos := start
	for {
		if curr.hasAccept(prog) {
			return true
		}
		if pos >= len(text) {
			return false
		}
		b := text[pos]
		next.reset()
		for _, id := range curr.list {
			st := &prog.States[id]
			switch st.Kind {
			case compiler.KindLiteral:
				if st.Byte == b {
					addClosure(next, prog, st.Out, pos+1, len(text))
				}
			case compiler.KindAny:
				addClosure(next, prog, st.Out, pos+1, len(text))
			case compiler.KindClass:
				if st.Class.Contains(b) {
					addClosure(next, prog, st.Out, pos+1, len(text))
				}
			}
		}
		curr, next = next, curr
		pos++
	}
}

// addClosure adds id, and everything reachable from it by epsilon
// transitions whose side conditions hold at pos, to set. Deduplication uses
// set's generation mark so each state is visited at most once per step.
func addClosure(set *stateSet, prog *compiler.Program, id compiler.StateID, pos, textLen int) {
	if id == compiler.InvalidState || set.seen(id) {
		return
	}
	set.mark(id)
	st := &prog.States[id]
	switch st.Kind {
	case compiler.KindSplit:
		addClosure(set, prog, st.Out, pos, textLen)
		addClosure(set, prog, st.Out2, pos, textLen)
	case compiler.KindStartAnchor:
		if pos == 0 {
			addClosure(set, prog, st.Out, pos, textLen)
		}
	case compiler.KindEndAnchor:
		if pos == textLen {
			addClosure(set, prog, st.Out, pos, textLen)
		}
	default: // Literal, Any, Class, Accept: consuming or terminal states
		set.list = append(set.list, id)
	}
}
