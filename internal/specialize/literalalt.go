package specialize

import (
	"bytes"
	"strings"

	"github.com/coregx/ahocorasick"
)

// RecognizeLiteralAlternation implements §4.7: a top-level alternation
// (possibly grouped, or a disjunction of groups) whose every leaf
// alternative is a pure literal run.
func RecognizeLiteralAlternation(pattern string, limits Limits) (Matcher, bool, error) {
	if !strings.Contains(pattern, "|") {
		return nil, false, nil
	}
	branches := FlattenAlternatives(pattern)
	if len(branches) < 2 {
		return nil, false, nil
	}
	lits := make([][]byte, len(branches))
	for i, b := range branches {
		if containsMeta(b) {
			return nil, false, nil
		}
		lits[i] = decodeLiteral(b)
	}
	return buildLiteralSetMatcher(lits), true, nil
}

// buildLiteralSetMatcher picks the search strategy for a fixed set of
// literal alternatives: an Aho-Corasick automaton once there are enough
// patterns to be worth the construction cost, otherwise a plain loop of
// substring searches, per §4.7's "any substring algorithm" allowance.
func buildLiteralSetMatcher(lits [][]byte) Matcher {
	if len(lits) >= 3 {
		builder := ahocorasick.NewBuilder()
		for _, l := range lits {
			builder.AddPattern(l)
		}
		if auto, err := builder.Build(); err == nil {
			return &ahoCorasickMatcher{auto: auto}
		}
	}
	return &literalLoopMatcher{lits: lits}
}

type ahoCorasickMatcher struct {
	auto *ahocorasick.Automaton
}

func (m *ahoCorasickMatcher) IsMatch(text []byte) bool {
	return m.auto.IsMatch(text)
}

type literalLoopMatcher struct {
	lits [][]byte
}

func (m *literalLoopMatcher) IsMatch(text []byte) bool {
	for _, l := range m.lits {
		if bytes.Contains(text, l) {
			return true
		}
	}
	return false
}
