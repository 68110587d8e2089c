package vibrex

import (
	"strings"
	"testing"
	"time"
)

// TestSeedScenarios exercises the concrete seed cases directly.
func TestSeedScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"h.llo", "hello", true},
		{"h.llo", "hllo", false},
		{"h.llo", "h@llo", true},

		{"^hello$", "hello", true},
		{"^hello$", "hello world", false},
		{"^hello$", "", false},

		{"ab+c", "abbbbc", true},
		{"ab+c", "ac", false},
		{"ab+c", "xabcy", true},

		{"[^0-9]+", "abc", true},
		{"[^0-9]+", "123", false},
		{"[^0-9]+", "a1b2", true},

		{
			`^FDSN:NET_STA_LOC_L_H_N/MSEED3?|^FDSN:XY_STA_10_B_H_.*/MSEED3?|^FDSN:YY_ST1_.*_.*_.*_Z/MSEED3?`,
			"FDSN:XY_STA_10_B_H_Z/MSEED", true,
		},
		{
			`^FDSN:NET_STA_LOC_L_H_N/MSEED3?|^FDSN:XY_STA_10_B_H_.*/MSEED3?|^FDSN:YY_ST1_.*_.*_.*_Z/MSEED3?`,
			"FDSN:ZZ_STA_LOC/MSEED", false,
		},
		{
			`^FDSN:NET_STA_LOC_L_H_N/MSEED3?|^FDSN:XY_STA_10_B_H_.*/MSEED3?|^FDSN:YY_ST1_.*_.*_.*_Z/MSEED3?`,
			"prefix FDSN:NET_STA_LOC_L_H_N/MSEED", false,
		},
	}
	for _, c := range cases {
		re, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}
		if got := re.MatchString(c.text); got != c.want {
			t.Errorf("Compile(%q).MatchString(%q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}

// TestCatastrophicBacktrackingImmunity is the linear-time seed case: a
// pattern shaped to cause exponential backtracking in a naive backtracker
// must still return promptly.
func TestCatastrophicBacktrackingImmunity(t *testing.T) {
	re, err := Compile(`(a+)+`)
	if err != nil {
		t.Fatal(err)
	}
	text := strings.Repeat("a", 30) + "X"
	done := make(chan bool, 1)
	go func() { done <- re.MatchString(text) }()
	select {
	case got := <-done:
		if !got {
			t.Error("expected a match (an a-run is matched)")
		}
	case <-time.After(time.Second):
		t.Fatal("match did not complete within one second")
	}
}

func TestAnchorNormalization(t *testing.T) {
	withAnchors := MustCompile("^hello$")
	bare := MustCompile("hello")
	for _, text := range []string{"hello", "hello world", "say hello", ""} {
		want := bare.MatchString(text) && text == "hello"
		if got := withAnchors.MatchString(text); got != want {
			t.Errorf("anchored MatchString(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestAlternationCommutativity(t *testing.T) {
	a := MustCompile("cat|dog")
	b := MustCompile("dog|cat")
	for _, text := range []string{"cat", "dog", "catdog", "fish"} {
		if a.MatchString(text) != b.MatchString(text) {
			t.Errorf("alternation order changed result for %q", text)
		}
	}
}

func TestDotStarAbsorbsPrefix(t *testing.T) {
	re := MustCompile("cat.*")
	if !re.MatchString("concatenate") {
		t.Error("expected cat.* to match a string containing cat as a substring")
	}
	if re.MatchString("dog") {
		t.Error("expected cat.* not to match a string without cat")
	}
}

func TestNonCapturingGroupEquivalence(t *testing.T) {
	a := MustCompile("(?:ab)+c")
	b := MustCompile("(ab)+c")
	for _, text := range []string{"abc", "ababc", "c", "abab"} {
		if a.MatchString(text) != b.MatchString(text) {
			t.Errorf("(?:X) vs (X) disagreed on %q", text)
		}
	}
}

func TestNullPatternAndTooLong(t *testing.T) {
	if _, err := Compile(""); err == nil {
		t.Fatal("expected an error for an empty pattern")
	} else if err.Error() != "null pattern" {
		t.Errorf("Error() = %q, want %q", err.Error(), "null pattern")
	}

	cfg := DefaultConfig()
	cfg.MaxPatternLen = 4
	if _, err := CompileConfig("hello", cfg); err == nil {
		t.Fatal("expected an error for a pattern exceeding the length cap")
	} else if err.Error() != "pattern too long (exceeds security limit)" {
		t.Errorf("Error() = %q, want %q", err.Error(), "pattern too long (exceeds security limit)")
	}
}

func TestInvalidSyntax(t *testing.T) {
	for _, pattern := range []string{"a(", "a[", "a**", "[z-a]", "[]", "a\\"} {
		if _, err := Compile(pattern); err == nil {
			t.Errorf("Compile(%q): expected an error", pattern)
		}
	}
}

func TestNilAndReleasedHandleBehavior(t *testing.T) {
	var re *Regexp
	if re.MatchString("anything") {
		t.Error("nil *Regexp should never match")
	}
	re.Release() // must not panic

	live := MustCompile("abc")
	live.Release()
	if live.MatchString("abc") {
		t.Error("a released handle should not match")
	}
	live.Release() // double release must not panic
}

func TestInvalidConfigFailsClosed(t *testing.T) {
	cfg := Config{MaxPatternLen: 0, MaxRecursion: 10, MaxAlternation: 2, MaxStates: 64}
	if _, err := CompileConfig("a", cfg); err == nil {
		t.Fatal("expected an error for an invalid Config")
	}
}

func TestStrategyDiagnostics(t *testing.T) {
	cases := map[string]string{
		".*":                   "dotstar-all",
		"^hello.*world$":       "both-anchors-literal",
		`https?://[a-z]+`:      "url-shape",
		"foo|bar|baz":          "literal-alternation",
		"a":                    "single-character",
		"h.llo":                "general-automaton",
	}
	for pattern, want := range cases {
		re := MustCompile(pattern)
		if got := re.Strategy(); got != want {
			t.Errorf("Compile(%q).Strategy() = %q, want %q", pattern, got, want)
		}
	}
}

func TestStringReturnsOriginalPattern(t *testing.T) {
	re := MustCompile(`ab+c`)
	if re.String() != `ab+c` {
		t.Errorf("String() = %q, want %q", re.String(), `ab+c`)
	}
}
