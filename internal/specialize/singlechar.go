package specialize

import "github.com/CTrabant/vibrex/internal/litscan"

// RecognizeSingleChar implements the single-character pattern fast path: a
// pattern that, once its optional anchors are stripped, decodes to exactly
// one literal byte. It is a degenerate case of the DFA specialization
// (§4.4) but cheaper to detect and to execute, so the dispatcher tries it
// first.
func RecognizeSingleChar(pattern string, limits Limits) (Matcher, bool, error) {
	body, anchoredStart, anchoredEnd := StripAnchors(pattern)
	if containsMeta(body) {
		return nil, false, nil
	}
	lit := decodeLiteral(body)
	if len(lit) != 1 {
		return nil, false, nil
	}
	return &singleCharMatcher{b: lit[0], anchoredStart: anchoredStart, anchoredEnd: anchoredEnd}, true, nil
}

type singleCharMatcher struct {
	b                           byte
	anchoredStart, anchoredEnd bool
}

func (m *singleCharMatcher) IsMatch(text []byte) bool {
	switch {
	case m.anchoredStart && m.anchoredEnd:
		return len(text) == 1 && text[0] == m.b
	case m.anchoredStart:
		return len(text) >= 1 && text[0] == m.b
	case m.anchoredEnd:
		return len(text) >= 1 && text[len(text)-1] == m.b
	default:
		return litscan.IndexByte(text, m.b) >= 0
	}
}
