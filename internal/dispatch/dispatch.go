// Package dispatch implements the optimizer/dispatcher: at compile time it
// tries each shape recognizer in the frozen priority order from §4.8's
// numbered list (plus the supplemented single-character fast path, slotted
// ahead of the DFA recognizer it is a degenerate case of), and falls
// through to the general automaton — the correctness floor — when no
// specialization applies. At match time the resulting Plan just holds one
// Matcher interface value, so dispatch per call is a single method call
// with no branching on the handle's shape.
package dispatch

import (
	"github.com/CTrabant/vibrex/internal/compiler"
	"github.com/CTrabant/vibrex/internal/litscan"
	"github.com/CTrabant/vibrex/internal/matcher"
	"github.com/CTrabant/vibrex/internal/specialize"
)

// Strategy names which matcher branch a Plan ended up with. It exists
// purely for diagnostics (the compiled handle's String() method, for the
// benefit of an external comparison harness per §6) — nothing at match
// time switches on it.
type Strategy int

const (
	StrategyDotStarAll Strategy = iota
	StrategyBothAnchors
	StrategyURLShape
	StrategyLiteralAlternation
	StrategyAdvancedAlternation
	StrategySingleChar
	StrategyDFA
	StrategyGeneral
)

func (s Strategy) String() string {
	switch s {
	case StrategyDotStarAll:
		return "dotstar-all"
	case StrategyBothAnchors:
		return "both-anchors-literal"
	case StrategyURLShape:
		return "url-shape"
	case StrategyLiteralAlternation:
		return "literal-alternation"
	case StrategyAdvancedAlternation:
		return "advanced-alternation"
	case StrategySingleChar:
		return "single-character"
	case StrategyDFA:
		return "dfa"
	case StrategyGeneral:
		return "general-automaton"
	default:
		return "unknown"
	}
}

// Plan is the compiled, steady-state result of dispatching: one chosen
// matcher branch, fixed forever per the data model's "exactly one matcher
// branch is active per handle" invariant.
type Plan struct {
	Matcher  specialize.Matcher
	Strategy Strategy
}

type step struct {
	strategy Strategy
	fn       specialize.Recognizer
}

// priority is the frozen cascade: first recognizer to accept the pattern
// wins.
var priority = []step{
	{StrategyDotStarAll, specialize.RecognizeDotStarAll},
	{StrategyBothAnchors, specialize.RecognizeBothAnchors},
	{StrategyURLShape, specialize.RecognizeURLShape},
	{StrategyLiteralAlternation, specialize.RecognizeLiteralAlternation},
	{StrategyAdvancedAlternation, specialize.RecognizeAdvanced},
	{StrategySingleChar, specialize.RecognizeSingleChar},
	{StrategyDFA, specialize.RecognizeDFA},
}

// Compile dispatches pattern to its matcher branch. A recognizer's internal
// error (a resource limit blown while recursively compiling a middle or a
// dotstar core, say) is treated the same as that recognizer declining;
// only the final general-automaton compile can return an authoritative
// error, since it is the one path every pattern must be able to take.
func Compile(pattern string, limits compiler.Limits) (*Plan, error) {
	for _, st := range priority {
		m, ok, err := st.fn(pattern, limits)
		if err != nil {
			continue
		}
		if ok {
			return &Plan{Matcher: m, Strategy: st.strategy}, nil
		}
	}

	prog, err := compiler.ParsePattern(pattern, limits)
	if err != nil {
		return nil, err
	}
	prefixHint, firstByte, haveFirst := startHints(pattern)
	h := matcher.NewHandle(prog, prefixHint, firstByte, haveFirst)
	return &Plan{Matcher: h, Strategy: StrategyGeneral}, nil
}

// startHints derives the general matcher's start-position hints (§4.3)
// from the raw pattern text: the fixed literal run at its head, if any.
// A pattern with a top-level '|' gets no hints, since the head of its first
// branch is not required by the others.
func startHints(pattern string) (prefix []byte, firstByte byte, haveFirst bool) {
	if len(specialize.FlattenAlternatives(pattern)) > 1 {
		return nil, 0, false
	}
	lit, _ := litscan.PrefixSpan(pattern)
	if len(lit) == 0 {
		return nil, 0, false
	}
	if len(lit) >= 3 {
		prefix = lit
	}
	return prefix, lit[0], true
}
