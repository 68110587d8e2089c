package matcher

import (
	"testing"

	"github.com/CTrabant/vibrex/internal/compiler"
)

func testLimits() compiler.Limits {
	return compiler.Limits{MaxPatternLen: 65536, MaxRecursion: 1000, MaxAlternation: 1000, MaxStates: 100000}
}

func build(t *testing.T, pattern string) *Handle {
	t.Helper()
	prog, err := compiler.ParsePattern(pattern, testLimits())
	if err != nil {
		t.Fatalf("ParsePattern(%q): %v", pattern, err)
	}
	return NewHandle(prog, nil, 0, false)
}

func TestGeneralMatcherSeedCases(t *testing.T) {
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
	}
	for _, c := range cases {
		h := build(t, c.pattern)
		got := h.IsMatch([]byte(c.text))
		if got != c.want {
			t.Errorf("pattern %q text %q: got %v want %v", c.pattern, c.text, got, c.want)
		}
	}
}

func TestCatastrophicBacktrackingImmunity(t *testing.T) {
	h := build(t, "(a+)+")
	text := ""
	for i := 0; i < 30; i++ {
		text += "a"
	}
	text += "X"
	if !h.IsMatch([]byte(text)) {
		t.Fatal("expected a match")
	}
}

func TestEmptyPatternMatchesEverything(t *testing.T) {
	h := build(t, "")
	if !h.IsMatch([]byte("")) {
		t.Fatal("empty pattern should match empty text")
	}
	if !h.IsMatch([]byte("anything")) {
		t.Fatal("empty pattern should match any text")
	}
}

func TestAlternationCommutativity(t *testing.T) {
	a := build(t, "foo|bar")
	b := build(t, "bar|foo")
	for _, text := range []string{"foo", "bar", "baz", ""} {
		if a.IsMatch([]byte(text)) != b.IsMatch([]byte(text)) {
			t.Fatalf("commutativity violated for text %q", text)
		}
	}
}

func TestBoyerMoorePrefixPath(t *testing.T) {
	prog, err := compiler.ParsePattern("hello.*world", testLimits())
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandle(prog, []byte("hello"), 0, false)
	if !h.IsMatch([]byte("say hello there world!")) {
		t.Fatal("expected match via literal-prefix path")
	}
	if h.IsMatch([]byte("say goodbye")) {
		t.Fatal("expected no match")
	}
}

func TestFirstByteScanPath(t *testing.T) {
	prog, err := compiler.ParsePattern(".*Z", testLimits())
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandle(prog, nil, 'Z', true)
	if !h.IsMatch([]byte("abcZdef")) {
		t.Fatal("expected match via first-byte scan path")
	}
}

func TestConcurrentMatchesOnOneHandle(t *testing.T) {
	h := build(t, "ab+c")
	done := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		go func(n int) {
			text := "abbbbc"
			if n%2 == 0 {
				text = "ac"
			}
			done <- h.IsMatch([]byte(text))
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
