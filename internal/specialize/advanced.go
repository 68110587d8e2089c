package specialize

import (
	"bytes"

	"github.com/CTrabant/vibrex/internal/compiler"
	"github.com/CTrabant/vibrex/internal/matcher"
)

// RecognizeAdvanced implements §4.8. Two of its three applicability
// clauses are covered: a shared literal prefix and/or suffix across
// branches (with regex middles recursively compiled), and a uniform
// dotstar shape (all branches sharing a ".*" prefix, a ".*" suffix, or
// both). The third clause — mixed dotstar/literal branches under a single
// start anchor — is deliberately left unspecialized: compiling each
// branch independently would buy nothing over falling through to the
// general automaton, which remains correct for that shape, so Recognize
// declines rather than adding a specialization that cannot outperform the
// floor it would replace.
func RecognizeAdvanced(pattern string, limits Limits) (Matcher, bool, error) {
	branches := splitTopLevel(pattern, '|')
	n := len(branches)
	if n < 2 {
		return nil, false, nil
	}

	stripped := make([]string, n)
	allStart, noneStart := true, true
	allEnd, noneEnd := true, true
	for i, b := range branches {
		body, as, ae := StripAnchors(b)
		stripped[i] = body
		if as {
			noneStart = false
		} else {
			allStart = false
		}
		if ae {
			noneEnd = false
		} else {
			allEnd = false
		}
	}
	if !allStart && !noneStart {
		return nil, false, nil
	}
	if !allEnd && !noneEnd {
		return nil, false, nil
	}
	startAnchored, endAnchored := allStart, allEnd

	if n < 3 && !startAnchored {
		return nil, false, nil
	}

	if m, ok := recognizePrefixSuffix(stripped, startAnchored, endAnchored, limits); ok {
		return m, true, nil
	}
	if m, ok := recognizeDotstar(stripped, limits); ok {
		return m, true, nil
	}
	return nil, false, nil
}

func recognizePrefixSuffix(stripped []string, startAnchored, endAnchored bool, limits Limits) (Matcher, bool) {
	toksList := make([][]token, len(stripped))
	for i, b := range stripped {
		toksList[i] = tokenize(b)
	}
	prefix, prefixCount := commonPrefixTokens(toksList)
	suffix, suffixCount := commonSuffixTokens(toksList)
	if trailingCloserIsSpurious(suffix) {
		suffix, suffixCount = nil, 0
	}
	if len(prefix) < 3 && len(suffix) < 3 {
		return nil, false
	}

	middles := make([]middleMatcher, len(stripped))
	for i, b := range stripped {
		toks := toksList[i]
		pOff := rawLenPrefix(toks, prefixCount)
		sOff := len(b) - rawLenSuffix(toks, suffixCount)
		if sOff < pOff {
			return nil, false
		}
		mid := b[pOff:sOff]
		// With no end anchor and no shared suffix, the middle only has to
		// match at the start of the text that follows the prefix.
		openEnd := !endAnchored && suffixCount == 0
		if containsMeta(mid) || openEnd {
			tail := "$"
			if openEnd {
				tail = ""
			}
			prog, err := compiler.ParsePattern("^"+mid+tail, limits)
			if err != nil {
				return nil, false
			}
			middles[i] = regexMiddle{h: matcher.NewHandle(prog, nil, 0, false)}
		} else {
			middles[i] = literalMiddle{lit: decodeLiteral(mid)}
		}
	}

	return &prefixSuffixMatcher{
		prefix: prefix, suffix: suffix, middles: middles,
		startAnchored: startAnchored, endAnchored: endAnchored,
	}, true
}

func recognizeDotstar(stripped []string, limits Limits) (Matcher, bool) {
	n := len(stripped)
	cores := make([]string, n)
	var commonTag string
	for i, b := range stripped {
		rest := b
		hasPre := hasDotStarPrefix(rest)
		if hasPre {
			rest = rest[2:]
		}
		hasSuf := hasDotStarSuffix(rest)
		if hasSuf {
			rest = rest[:len(rest)-2]
		}
		var tag string
		switch {
		case hasPre && hasSuf:
			tag = "wrapper"
		case hasPre:
			tag = "prefix"
		case hasSuf:
			tag = "suffix"
		default:
			return nil, false
		}
		cores[i] = rest
		if i == 0 {
			commonTag = tag
		} else if tag != commonTag {
			return nil, false
		}
	}
	return buildDotstarMatcher(commonTag, cores, limits)
}

// hasDotStarPrefix reports whether s begins with the metacharacter ".*"
// (a '.' at offset 0 can never be escaped, since escaping needs a
// preceding backslash).
func hasDotStarPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '.' && s[1] == '*'
}

// hasDotStarSuffix reports whether s ends with an unescaped '.' followed
// by '*'.
func hasDotStarSuffix(s string) bool {
	if len(s) < 2 || s[len(s)-1] != '*' || s[len(s)-2] != '.' {
		return false
	}
	backslashes := 0
	for i := len(s) - 3; i >= 0 && s[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

func buildDotstarMatcher(tag string, cores []string, limits Limits) (Matcher, bool) {
	matchers := make([]Matcher, 0, len(cores))
	for _, core := range cores {
		if core == "" {
			return alwaysTrueMatcher{}, true
		}
		if containsMeta(core) {
			if _, err := compiler.ParsePattern(core, limits); err != nil {
				return nil, false
			}
			var sub string
			switch tag {
			case "prefix":
				sub = core + "$"
			case "suffix":
				sub = "^" + core
			default:
				sub = core
			}
			prog, err := compiler.ParsePattern(sub, limits)
			if err != nil {
				return nil, false
			}
			matchers = append(matchers, matcher.NewHandle(prog, nil, 0, false))
		} else {
			matchers = append(matchers, literalCoreMatcher{lit: decodeLiteral(core), tag: tag})
		}
	}
	return &dotstarSetMatcher{matchers: matchers}, true
}

type alwaysTrueMatcher struct{}

func (alwaysTrueMatcher) IsMatch([]byte) bool { return true }

type literalCoreMatcher struct {
	lit []byte
	tag string
}

func (m literalCoreMatcher) IsMatch(text []byte) bool {
	switch m.tag {
	case "prefix":
		return bytes.HasSuffix(text, m.lit)
	case "suffix":
		return bytes.HasPrefix(text, m.lit)
	default:
		return bytes.Contains(text, m.lit)
	}
}

type dotstarSetMatcher struct {
	matchers []Matcher
}

func (m *dotstarSetMatcher) IsMatch(text []byte) bool {
	for _, mm := range m.matchers {
		if mm.IsMatch(text) {
			return true
		}
	}
	return false
}

// middleMatcher is the per-branch "middle" comparison used by
// prefixSuffixMatcher: either a literal byte run or a recursively compiled
// anchored sub-pattern.
type middleMatcher interface {
	matches(span []byte) bool
}

type literalMiddle struct {
	lit []byte
}

func (l literalMiddle) matches(span []byte) bool {
	return bytes.Equal(span, l.lit)
}

type regexMiddle struct {
	h *matcher.Handle
}

func (r regexMiddle) matches(span []byte) bool {
	return r.h.IsMatch(span)
}

type prefixSuffixMatcher struct {
	prefix, suffix             []byte
	middles                    []middleMatcher
	startAnchored, endAnchored bool
}

func (m *prefixSuffixMatcher) IsMatch(text []byte) bool {
	if m.startAnchored {
		if !bytes.HasPrefix(text, m.prefix) {
			return false
		}
		return m.tryFromPrefixEnd(text, len(m.prefix))
	}
	from := 0
	for {
		idx := bytes.Index(text[from:], m.prefix)
		if idx < 0 {
			return false
		}
		start := from + idx
		if m.tryFromPrefixEnd(text, start+len(m.prefix)) {
			return true
		}
		from = start + 1
	}
}

func (m *prefixSuffixMatcher) tryFromPrefixEnd(text []byte, prefixEnd int) bool {
	anyMiddle := func(span []byte) bool {
		for _, mm := range m.middles {
			if mm.matches(span) {
				return true
			}
		}
		return false
	}
	if len(m.suffix) == 0 {
		return anyMiddle(text[prefixEnd:])
	}
	if m.endAnchored {
		if len(text)-len(m.suffix) < prefixEnd || !bytes.HasSuffix(text, m.suffix) {
			return false
		}
		return anyMiddle(text[prefixEnd : len(text)-len(m.suffix)])
	}
	// Without an end anchor, any occurrence of the suffix may close a match.
	rest := text[prefixEnd:]
	for from := 0; from <= len(rest); {
		idx := bytes.Index(rest[from:], m.suffix)
		if idx < 0 {
			return false
		}
		if anyMiddle(rest[:from+idx]) {
			return true
		}
		from += idx + 1
	}
	return false
}
