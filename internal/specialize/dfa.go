package specialize

// RecognizeDFA implements §4.4: the pattern contains no
// ". * + ? [ ( )", with '|' legal only at the top level, plus an optional
// leading '^' and/or trailing '$'. Escape sequences produce literal bytes.
// The alternatives (or the single literal) are compiled into a trie, one
// DFA state per trie node.
//
// Because '|' is the lowest-precedence operator in the grammar, a '^' or
// '$' written once in the source text only binds the branch adjacent to
// it, not the whole alternation (unlike the both-anchors and
// advanced-alternation shapes, which require every branch to carry its own
// anchor). So each branch's anchors are checked independently here, and the
// shape is only accepted when every branch agrees — otherwise a single
// trie-wide anchored/unanchored flag would silently change the meaning of
// the other branches, which would violate the "specialized and general
// matcher agree" property. A pattern like "^cat|dog" therefore declines
// this specialization and falls through to the general automaton, which
// remains correct for it.
func RecognizeDFA(pattern string, limits Limits) (Matcher, bool, error) {
	branches := splitLiteralAlternatives(pattern)

	stripped := make([]string, len(branches))
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

	lits := make([][]byte, 0, len(stripped))
	for _, b := range stripped {
		if len(b) == 0 {
			return nil, false, nil
		}
		for i := 0; i < len(b); i++ {
			switch b[i] {
			case '\\':
				if i+1 >= len(b) {
					return nil, false, nil // lone trailing backslash
				}
				i++
			case '.', '*', '+', '?', '[', '(', ')', '^', '$':
				return nil, false, nil
			}
		}
		lits = append(lits, decodeLiteral(b))
	}

	nodes := buildTrie(lits)
	return &dfaMatcher{nodes: nodes, anchoredStart: allStart, anchoredEnd: allEnd}, true, nil
}

// splitLiteralAlternatives splits s on every unescaped top-level '|'.
func splitLiteralAlternatives(s string) []string {
	return splitTopLevel(s, '|')
}

// trieNode is one DFA state: a 256-entry transition table (-1 meaning no
// transition) and an accept flag.
type trieNode struct {
	next   [256]int32
	accept bool
}

func newTrieNode() trieNode {
	var n trieNode
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

func buildTrie(lits [][]byte) []trieNode {
	nodes := []trieNode{newTrieNode()}
	for _, lit := range lits {
		cur := int32(0)
		for _, b := range lit {
			nxt := nodes[cur].next[b]
			if nxt == -1 {
				nodes = append(nodes, newTrieNode())
				nxt = int32(len(nodes) - 1)
				nodes[cur].next[b] = nxt
			}
			cur = nxt
		}
		nodes[cur].accept = true
	}
	return nodes
}

type dfaMatcher struct {
	nodes                      []trieNode
	anchoredStart, anchoredEnd bool
}

func (m *dfaMatcher) IsMatch(text []byte) bool {
	if m.anchoredStart {
		return m.walkFrom(text, 0)
	}
	for start := 0; start <= len(text); start++ {
		if m.walkFrom(text, start) {
			return true
		}
	}
	return false
}

// walkFrom walks the trie from its root starting at text[start:], reporting
// accept as soon as an accepting node is reached (subject to the end-anchor
// condition), or failure once no transition exists for the next byte.
func (m *dfaMatcher) walkFrom(text []byte, start int) bool {
	cur := int32(0)
	for pos := start; ; pos++ {
		if m.nodes[cur].accept && (!m.anchoredEnd || pos == len(text)) {
			return true
		}
		if pos >= len(text) {
			return false
		}
		nxt := m.nodes[cur].next[text[pos]]
		if nxt == -1 {
			return false
		}
		cur = nxt
	}
}
