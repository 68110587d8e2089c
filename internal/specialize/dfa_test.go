package specialize

import "testing"

func testLimits() Limits {
	return Limits{MaxPatternLen: 65536, MaxRecursion: 1000, MaxAlternation: 1000, MaxStates: 100000}
}

func TestRecognizeDFAUnanchored(t *testing.T) {
	m, ok, err := RecognizeDFA("cat|dog|bird", testLimits())
	if err != nil || !ok {
		t.Fatalf("expected recognition, got ok=%v err=%v", ok, err)
	}
	cases := []struct {
		text string
		want bool
	}{
		{"I have a dog", true},
		{"catastrophe", true},
		{"fish", false},
	}
	for _, c := range cases {
		if got := m.IsMatch([]byte(c.text)); got != c.want {
			t.Errorf("IsMatch(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestRecognizeDFAAnchored(t *testing.T) {
	m, ok, _ := RecognizeDFA("^abc$", testLimits())
	if !ok {
		t.Fatal("expected recognition")
	}
	if !m.IsMatch([]byte("abc")) {
		t.Error("expected exact match")
	}
	if m.IsMatch([]byte("abcd")) || m.IsMatch([]byte("xabc")) {
		t.Error("anchored DFA matcher should reject extra bytes")
	}
}

func TestRecognizeDFADeclines(t *testing.T) {
	cases := []string{"a.b", "a*", "a(b|c)", "[abc]"}
	for _, p := range cases {
		if _, ok, _ := RecognizeDFA(p, testLimits()); ok {
			t.Errorf("did not expect %q to be recognized", p)
		}
	}
}
