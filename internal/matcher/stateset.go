package matcher

import "github.com/CTrabant/vibrex/internal/compiler"

// stateSet is the "two-set" automaton simulation's working set: a dense
// list of consuming/terminal states reached so far this step, plus a
// sparse generation array used to test set membership without clearing it
// between steps. This is the "mark" field from the data model, lifted off
// the automaton states (which are read-only and shared) and into the
// per-call frame, per the concurrency model.
type stateSet struct {
	list []compiler.StateID
	mark_ []uint32
	gen   uint32
}

func newStateSet(n int) *stateSet {
	return &stateSet{
		list:  make([]compiler.StateID, 0, n),
		mark_: make([]uint32, n),
	}
}

// reset starts a new step: the generation counter advances so every prior
// mark becomes stale, and the dense list is truncated without reallocating.
func (s *stateSet) reset() {
	s.gen++
	s.list = s.list[:0]
}

func (s *stateSet) seen(id compiler.StateID) bool {
	return s.mark_[id] == s.gen
}

func (s *stateSet) mark(id compiler.StateID) {
	s.mark_[id] = s.gen
}

func (s *stateSet) hasAccept(prog *compiler.Program) bool {
	for _, id := range s.list {
		if prog.States[id].Kind == compiler.KindAccept {
			return true
		}
	}
	return false
}
