package specialize

import "bytes"

// RecognizeBothAnchors implements §4.5: a pattern of the exact form
// "^PREFIX.*SUFFIX$" where PREFIX and SUFFIX are non-empty literal runs and
// ".*" appears exactly once.
func RecognizeBothAnchors(pattern string, limits Limits) (Matcher, bool, error) {
	body, anchoredStart, anchoredEnd := StripAnchors(pattern)
	if !anchoredStart || !anchoredEnd {
		return nil, false, nil
	}

	idx := indexDotStar(body)
	if idx < 0 {
		return nil, false, nil
	}
	if indexDotStar(body[idx+2:]) >= 0 {
		return nil, false, nil // ".*" must appear exactly once
	}

	prefix, suffix := body[:idx], body[idx+2:]
	if len(prefix) == 0 || len(suffix) == 0 {
		return nil, false, nil
	}
	if containsMeta(prefix) || containsMeta(suffix) {
		return nil, false, nil
	}

	return &bothAnchorsMatcher{prefix: decodeLiteral(prefix), suffix: decodeLiteral(suffix)}, true, nil
}

// indexDotStar finds the first unescaped ".*" in s, or -1.
func indexDotStar(s string) int {
	i := 0
	for i < len(s)-1 {
		if s[i] == '\\' {
			i += 2
			continue
		}
		if s[i] == '.' && s[i+1] == '*' {
			return i
		}
		i++
	}
	return -1
}

type bothAnchorsMatcher struct {
	prefix, suffix []byte
}

func (m *bothAnchorsMatcher) IsMatch(text []byte) bool {
	if len(text) < len(m.prefix)+len(m.suffix) {
		return false
	}
	return bytes.HasPrefix(text, m.prefix) && bytes.HasSuffix(text, m.suffix)
}
