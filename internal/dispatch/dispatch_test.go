package dispatch

import (
	"testing"

	"github.com/CTrabant/vibrex/internal/compiler"
)

func testLimits() compiler.Limits {
	return compiler.Limits{MaxPatternLen: 65536, MaxRecursion: 1000, MaxAlternation: 1000, MaxStates: 100000}
}

func TestDispatchPicksSpecializations(t *testing.T) {
	cases := []struct {
		pattern string
		want    Strategy
	}{
		{".*", StrategyDotStarAll},
		{"^hello.*world$", StrategyBothAnchors},
		{`https?://[a-z]+`, StrategyURLShape},
		{"foo|bar|baz", StrategyLiteralAlternation},
		{"a", StrategySingleChar},
		{"cat|dog", StrategyLiteralAlternation},
		{"^cat$|^dog$", StrategyDFA},
		{"h.llo", StrategyGeneral},
	}
	for _, c := range cases {
		p, err := Compile(c.pattern, testLimits())
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}
		if p.Strategy != c.want {
			t.Errorf("Compile(%q).Strategy = %v, want %v", c.pattern, p.Strategy, c.want)
		}
	}
}

func TestDispatchGeneralFallbackMatches(t *testing.T) {
	p, err := Compile("h.llo", testLimits())
	if err != nil {
		t.Fatal(err)
	}
	if !p.Matcher.IsMatch([]byte("hello")) || p.Matcher.IsMatch([]byte("hllo")) {
		t.Error("general-automaton fallback matcher misbehaved")
	}
}

func TestDispatchPropagatesCompileErrors(t *testing.T) {
	if _, err := Compile("a(", testLimits()); err == nil {
		t.Fatal("expected an error for an unbalanced pattern")
	}
}

func TestStrategyString(t *testing.T) {
	if StrategyGeneral.String() != "general-automaton" {
		t.Errorf("unexpected String(): %q", StrategyGeneral.String())
	}
}
