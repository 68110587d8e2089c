package specialize

// RecognizeDotStarAll implements the match-time fast path from §4.9: an
// unanchored ".*" alone accepts every string. Framed as a recognizer (run
// once, at compile time) rather than a per-call runtime check, since the
// shape is trivial to detect up front and the dispatcher already tries
// recognizers in priority order.
func RecognizeDotStarAll(pattern string, limits Limits) (Matcher, bool, error) {
	if pattern == ".*" {
		return alwaysTrueMatcher{}, true, nil
	}
	return nil, false, nil
}
