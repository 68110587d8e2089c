// Package vibrex provides a small, backtracking-free regular-expression
// engine for a deliberately limited syntax subset.
//
// vibrex trades capture groups, submatch positions, lazy quantifiers,
// back-references, and Unicode awareness for predictable, backtracking-free
// matching: the general matcher simulates the automaton in O(states) work
// per input byte from each start offset it tries, so pathological patterns
// like "(a+)+" against a long run of "a"s never exhibit catastrophic
// backtracking. Because it restarts the simulation at each candidate
// offset, its worst case over a whole search is O(states × |text|²), not
// linear in |text|.
//
// Compilation recognizes several pattern shapes for which a specialized
// matcher beats the general NFA simulation — anchored literal spans,
// http(s) URL scanning, literal alternations, shared-prefix/suffix and
// dotstar-wrapped alternations, and pure-literal/anchored-literal
// alternations via a trie — before falling back to the general automaton,
// which remains correct for every pattern in the supported syntax.
//
//	re, err := vibrex.Compile(`ab+c`)
//	if err != nil {
//	    // re is nil; err carries a short diagnostic
//	}
//	defer re.Release()
//	if re.MatchString("xabbbcy") {
//	    // matched
//	}
//
// Supported syntax: '.' (any byte), '*' '+' '?' (greedy quantifiers),
// '^' '$' (anchors), '|' (alternation), '\X' (literal byte X), '[...]'
// '[^...]' '[a-z]' (byte classes), '(...)' and its alias '(?:...)'
// (non-capturing groups). Anything else is a compile-time error.
package vibrex
