package compiler

// patch identifies one dangling out-arrow: the branch (0 = Out, 1 = Out2)
// of the state at id.
type patch struct {
	id     StateID
	branch int
}

// frag is a transient, compile-time-only automaton fragment: a start state
// plus the list of out-arrows that still need a target.
type frag struct {
	start StateID
	outs  []patch
}

func (a *Arena) setPatch(p patch, target StateID) {
	s := a.Get(p.id)
	if p.branch == 0 {
		s.Out = target
	} else {
		s.Out2 = target
	}
}

func (a *Arena) patchAll(outs []patch, target StateID) {
	for _, p := range outs {
		a.setPatch(p, target)
	}
}

// cat splices two fragments: f1's dangling arrows are patched to f2's
// start, and the result starts at f1's start and carries f2's own dangling
// arrows forward.
func cat(a *Arena, f1, f2 frag) frag {
	a.patchAll(f1.outs, f2.start)
	return frag{start: f1.start, outs: f2.outs}
}

// alt builds a fragment that non-deterministically enters any one of
// branches, via a right-folded chain of Split states. The combined
// out-arrow list is the union of every branch's, so whichever branch the
// simulation follows, the caller still gets one dangling frag to link.
func alt(a *Arena, branches []frag) (frag, error) {
	if len(branches) == 1 {
		return branches[0], nil
	}
	result := branches[len(branches)-1]
	for i := len(branches) - 2; i >= 0; i-- {
		id, err := a.Alloc(State{Kind: KindSplit, Out: branches[i].start, Out2: result.start})
		if err != nil {
			return frag{}, err
		}
		outs := make([]patch, 0, len(branches[i].outs)+len(result.outs))
		outs = append(outs, branches[i].outs...)
		outs = append(outs, result.outs...)
		result = frag{start: id, outs: outs}
	}
	return result, nil
}

// emptyFrag builds the fragment for an empty alternative (as in "a|") or an
// empty group "()" : a Split whose two out-arrows are both left dangling
// and will be patched to the same target, making it behave as an
// unconditional epsilon while staying within the seven-variant state model.
func emptyFrag(a *Arena) (frag, error) {
	id, err := a.Alloc(State{Kind: KindSplit, Out: InvalidState, Out2: InvalidState})
	if err != nil {
		return frag{}, err
	}
	return frag{start: id, outs: []patch{{id, 0}, {id, 1}}}, nil
}

// star builds the fragment for X* : a Split enters X on one branch and
// exits on the other; X's own arrows loop back into the Split.
func star(a *Arena, f frag) (frag, error) {
	id, err := a.Alloc(State{Kind: KindSplit, Out: f.start, Out2: InvalidState})
	if err != nil {
		return frag{}, err
	}
	a.patchAll(f.outs, id)
	return frag{start: id, outs: []patch{{id, 1}}}, nil
}

// plus builds the fragment for X+ : identical to star, except entry
// bypasses the Split so X executes at least once.
func plus(a *Arena, f frag) (frag, error) {
	id, err := a.Alloc(State{Kind: KindSplit, Out: f.start, Out2: InvalidState})
	if err != nil {
		return frag{}, err
	}
	a.patchAll(f.outs, id)
	return frag{start: f.start, outs: []patch{{id, 1}}}, nil
}

// optional builds the fragment for X? : a Split with one branch entering X
// and the other bypassing it; X's own exits and the bypass exit both feed
// the result's out-arrow list.
func optional(a *Arena, f frag) (frag, error) {
	id, err := a.Alloc(State{Kind: KindSplit, Out: f.start, Out2: InvalidState})
	if err != nil {
		return frag{}, err
	}
	outs := make([]patch, 0, len(f.outs)+1)
	outs = append(outs, f.outs...)
	outs = append(outs, patch{id, 1})
	return frag{start: id, outs: outs}, nil
}
