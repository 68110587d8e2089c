package specialize

import (
	"bytes"

	"github.com/CTrabant/vibrex/internal/bitset"
)

// RecognizeURLShape implements §4.6: a pattern of the exact form
// "https?://[class]+", with nothing else present (no anchors).
func RecognizeURLShape(pattern string, limits Limits) (Matcher, bool, error) {
	const head = "https?://"
	if len(pattern) <= len(head) || pattern[:len(head)] != head {
		return nil, false, nil
	}
	rest := pattern[len(head):]
	if len(rest) == 0 || rest[0] != '[' {
		return nil, false, nil
	}
	end := skipClass(rest, 0)
	if end >= len(rest) || rest[end] != '+' || end+1 != len(rest) {
		return nil, false, nil
	}
	cls, ok := parseByteClass(rest[:end])
	if !ok {
		return nil, false, nil
	}
	return &urlShapeMatcher{cls: cls}, true, nil
}

// parseByteClass parses a "[...]" class body (brackets included) using the
// same bytes-and-ranges grammar as the main parser's parseClass, but as a
// standalone function over a plain string rather than parser state, since
// this recognizer runs before any compiler arena exists.
func parseByteClass(s string) (*bitset.ByteClass, bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	body := s[1 : len(s)-1]
	cls := &bitset.ByteClass{}
	negated := false
	i := 0
	if i < len(body) && body[i] == '^' {
		negated = true
		i++
	}
	saw := false
	for i < len(body) {
		lo := body[i]
		i++
		hi := lo
		saw = true
		if i < len(body) && body[i] == '-' && i+1 < len(body) {
			i++
			hi = body[i]
			i++
			if hi < lo {
				return nil, false
			}
		}
		cls.SetRange(lo, hi)
	}
	if !saw {
		return nil, false
	}
	if negated {
		cls.Negate()
	}
	return cls, true
}

type urlShapeMatcher struct {
	cls *bitset.ByteClass
}

func (m *urlShapeMatcher) IsMatch(text []byte) bool {
	n := len(text)
	pos := 0
	for {
		idx := bytes.Index(text[pos:], []byte("http"))
		if idx < 0 {
			return false
		}
		start := pos + idx
		p := start + 4
		if p < n && text[p] == 's' {
			p++
		}
		if p+3 > n || string(text[p:p+3]) != "://" {
			pos = start + 1
			continue
		}
		p += 3
		runStart := p
		for p < n && m.cls.Contains(text[p]) {
			p++
		}
		if p > runStart {
			return true
		}
		pos = start + 1
	}
}
