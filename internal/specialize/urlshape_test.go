package specialize

import "testing"

func TestRecognizeURLShape(t *testing.T) {
	m, ok, err := RecognizeURLShape(`https?://[a-zA-Z0-9./]+`, Limits{})
	if err != nil || !ok {
		t.Fatalf("expected recognition, got ok=%v err=%v", ok, err)
	}
	cases := []struct {
		text string
		want bool
	}{
		{"visit http://example.com today", true},
		{"visit https://example.com/path today", true},
		{"no url here", false},
		{"http://", false},
		{"httpz://example.com", false},
	}
	for _, c := range cases {
		if got := m.IsMatch([]byte(c.text)); got != c.want {
			t.Errorf("IsMatch(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestRecognizeURLShapeDeclines(t *testing.T) {
	cases := []string{"http://[a-z]+", "^https?://[a-z]+", "https?://[a-z]+$", "https?://[a-z]*"}
	for _, p := range cases {
		if _, ok, _ := RecognizeURLShape(p, Limits{}); ok {
			t.Errorf("did not expect %q to be recognized", p)
		}
	}
}
