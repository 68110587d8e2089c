package specialize

import "testing"

func TestStripAnchors(t *testing.T) {
	cases := []struct {
		in                 string
		body               string
		anchorS, anchorE   bool
	}{
		{"^hello$", "hello", true, true},
		{"hello", "hello", false, false},
		{`hello\$`, `hello\$`, false, false},
		{`hello\\$`, `hello\\`, false, true},
		{"^", "", true, false},
	}
	for _, c := range cases {
		body, as, ae := StripAnchors(c.in)
		if body != c.body || as != c.anchorS || ae != c.anchorE {
			t.Errorf("StripAnchors(%q) = (%q,%v,%v), want (%q,%v,%v)", c.in, body, as, ae, c.body, c.anchorS, c.anchorE)
		}
	}
}

func TestFlattenAlternatives(t *testing.T) {
	got := FlattenAlternatives("(a|b)|(c|d)")
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSplitTopLevelRespectsGroupsAndClasses(t *testing.T) {
	got := splitTopLevel("a[|]b|c(d|e)f", '|')
	want := []string{"a[|]b", "c(d|e)f"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCommonPrefixSuffixTokens(t *testing.T) {
	lists := [][]token{tokenize("FDSN:NET_STA_LOC_L_H_N/MSEED3?"), tokenize("FDSN:XY_STA_10_B_H_.*/MSEED3?")}
	prefix, _ := commonPrefixTokens(lists)
	if string(prefix) != "FDSN:" {
		t.Errorf("prefix = %q, want FDSN:", prefix)
	}
	suffix, count := commonSuffixTokens(lists)
	if count != 0 || len(suffix) != 0 {
		t.Errorf("suffix = %q count %d, want empty (last token is a quantified atom)", suffix, count)
	}
}

func TestIsFullyWrapped(t *testing.T) {
	if !isFullyWrapped("(abc)") {
		t.Error("expected (abc) to be fully wrapped")
	}
	if isFullyWrapped("(a)(b)") {
		t.Error("did not expect (a)(b) to be fully wrapped")
	}
	if isFullyWrapped("(a)b") {
		t.Error("did not expect (a)b to be fully wrapped")
	}
}
