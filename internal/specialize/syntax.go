package specialize

import "strings"

// This file holds the string-level scanning the shape recognizers share:
// none of it touches the automaton, it only classifies and slices the raw
// pattern text before a recognizer decides whether its shape applies.

// StripAnchors removes a leading '^' and a trailing, unescaped '$' from
// pattern and reports which (if either) were present. A trailing '$' counts
// as an anchor only when it is reached by an even number of backslashes,
// since an odd run means the '$' itself is escaped into a literal.
func StripAnchors(pattern string) (body string, anchoredStart, anchoredEnd bool) {
	body = pattern
	if strings.HasPrefix(body, "^") {
		anchoredStart = true
		body = body[1:]
	}
	if endsWithUnescapedDollar(body) {
		anchoredEnd = true
		body = body[:len(body)-1]
	}
	return body, anchoredStart, anchoredEnd
}

func endsWithUnescapedDollar(s string) bool {
	if len(s) == 0 || s[len(s)-1] != '$' {
		return false
	}
	backslashes := 0
	for i := len(s) - 2; i >= 0 && s[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

// skipClass returns the index just past the end of the "[...]" class
// starting at s[i] (s[i] must be '['), following the parser's class
// grammar: the class ends at the first ']' after '[' (or '[^'), and a
// backslash inside a class is an ordinary member byte. It does not validate
// the class; a malformed class simply scans to the end of the string, which
// is safe because the caller always falls back to the general compiler when
// a recognizer declines.
func skipClass(s string, i int) int {
	j := i + 1
	if j < len(s) && s[j] == '^' {
		j++
	}
	for j < len(s) && s[j] != ']' {
		j++
	}
	if j < len(s) {
		j++
	}
	return j
}

// skipGroup returns the index just past the matching ')' for the group
// opening at s[i] (s[i] must be '(').
func skipGroup(s string, i int) int {
	depth := 1
	j := i + 1
	for j < len(s) && depth > 0 {
		switch {
		case s[j] == '\\':
			j += 2
		case s[j] == '[':
			j = skipClass(s, j)
		case s[j] == '(':
			depth++
			j++
		case s[j] == ')':
			depth--
			j++
		default:
			j++
		}
	}
	return j
}

// isFullyWrapped reports whether s is a single group spanning its entire
// length, i.e. "(...)" where the ')' matching the opening '(' is the last
// byte of s.
func isFullyWrapped(s string) bool {
	if len(s) == 0 || s[0] != '(' {
		return false
	}
	return skipGroup(s, 0) == len(s)
}

// unwrapGroup strips the outer parens (and a "?:" alias marker) from s,
// which the caller must have already verified isFullyWrapped.
func unwrapGroup(s string) string {
	inner := s[1 : len(s)-1]
	inner = strings.TrimPrefix(inner, "?:")
	return inner
}

// splitTopLevel splits s at every occurrence of sep that sits at bracket/
// group depth 0 and is not itself escaped. It is the shared implementation
// behind both "split on top-level |" (§4.7, §4.8) and "find the end of the
// top-level alternation" style scans.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\\':
			i += 2
		case s[i] == '[':
			i = skipClass(s, i)
		case s[i] == '(':
			depth++
			i++
		case s[i] == ')':
			depth--
			i++
		case s[i] == sep && depth == 0:
			parts = append(parts, s[last:i])
			i++
			last = i
		default:
			i++
		}
	}
	parts = append(parts, s[last:])
	return parts
}

// FlattenAlternatives splits pattern on every top-level '|', recursing into
// any branch that is itself a single group wrapping a sub-alternation (so
// "(a|b)|(c|d)" flattens to ["a","b","c","d"]), per §4.7's "disjunction of
// such groups" applicability clause.
func FlattenAlternatives(pattern string) []string {
	branches := splitTopLevel(pattern, '|')
	var out []string
	for _, b := range branches {
		if isFullyWrapped(b) {
			out = append(out, FlattenAlternatives(unwrapGroup(b))...)
		} else {
			out = append(out, b)
		}
	}
	return out
}

// containsMeta reports whether s, read literally (not evaluating escapes),
// contains any byte that is not possible in a pure escaped-literal run: this
// is a coarse, fast rejection test used by the literal-shape recognizers
// before they bother decoding escapes.
func containsMeta(s string) bool {
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return true // a lone trailing backslash escapes nothing
			}
			i += 2
		case '.', '*', '+', '?', '[', ']', '(', ')', '^', '$', '|':
			return true
		default:
			i++
		}
	}
	return false
}

// decodeLiteral decodes a string containing no metacharacters (the caller
// must have checked !containsMeta(s)) into its literal bytes, resolving
// "\X" escapes.
func decodeLiteral(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		out = append(out, s[i])
	}
	return out
}

// token is one atom-sized unit of a pattern string, produced by tokenize.
// It is the grain at which common-prefix/suffix discovery for §4.8 works:
// opaque units (classes, groups, metacharacters, and any atom immediately
// followed by a quantifier) never contribute to a literal prefix or suffix,
// even though they still occupy rawLen bytes of the original string.
type token struct {
	literal bool
	value   byte
	rawLen  int
}

func tokenize(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		start := i
		var tok token
		switch {
		case s[i] == '\\':
			if i+1 >= len(s) {
				tok = token{rawLen: 1}
				i++
			} else {
				tok = token{literal: true, value: s[i+1], rawLen: 2}
				i += 2
			}
		case s[i] == '[':
			j := skipClass(s, i)
			tok = token{rawLen: j - i}
			i = j
		case s[i] == '(':
			j := skipGroup(s, i)
			tok = token{rawLen: j - i}
			i = j
		case s[i] == '.' || s[i] == '^' || s[i] == '$':
			tok = token{rawLen: 1}
			i++
		default:
			tok = token{literal: true, value: s[i], rawLen: 1}
			i++
		}
		if i < len(s) && (s[i] == '*' || s[i] == '+' || s[i] == '?') {
			tok.literal = false
			tok.rawLen = (i - start) + 1
			i++
		}
		toks = append(toks, tok)
	}
	return toks
}

// commonPrefixTokens returns the longest run of leading tokens that are
// literal and byte-identical across every token list in lists, decoded to
// bytes, plus how many tokens (not bytes) it spans.
func commonPrefixTokens(lists [][]token) (lit []byte, count int) {
	if len(lists) == 0 {
		return nil, 0
	}
	for {
		var val byte
		for li, toks := range lists {
			if count >= len(toks) || !toks[count].literal {
				return lit, count
			}
			if li == 0 {
				val = toks[count].value
			} else if toks[count].value != val {
				return lit, count
			}
		}
		lit = append(lit, val)
		count++
	}
}

// commonSuffixTokens mirrors commonPrefixTokens from the tail.
func commonSuffixTokens(lists [][]token) (lit []byte, count int) {
	if len(lists) == 0 {
		return nil, 0
	}
	for {
		var val byte
		for li, toks := range lists {
			idx := len(toks) - 1 - count
			if idx < 0 || !toks[idx].literal {
				reverseBytes(lit)
				return lit, count
			}
			if li == 0 {
				val = toks[idx].value
			} else if toks[idx].value != val {
				reverseBytes(lit)
				return lit, count
			}
		}
		lit = append(lit, val)
		count++
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func rawLenPrefix(toks []token, count int) int {
	n := 0
	for i := 0; i < count; i++ {
		n += toks[i].rawLen
	}
	return n
}

func rawLenSuffix(toks []token, count int) int {
	n := 0
	for i := len(toks) - count; i < len(toks); i++ {
		n += toks[i].rawLen
	}
	return n
}

// trailingCloserIsSpurious implements the reference engine's heuristic,
// carried over as specified in §4.8: a "common suffix" consisting only of a
// bare ']' or ')' is really the tail of a character class or group from a
// branch that otherwise diverges, not a genuine shared literal suffix.
func trailingCloserIsSpurious(suffix []byte) bool {
	return len(suffix) == 1 && (suffix[0] == ']' || suffix[0] == ')')
}
