package compiler

import "fmt"

// Limits bounds the resources a single compile may consume. The zero value
// is not usable; fill in every field, or use the defaults a caller
// supplies via vibrex.Config.
type Limits struct {
	MaxPatternLen  int // pattern byte-length cap
	MaxRecursion   int // parser recursion depth cap
	MaxAlternation int // cap on '|' separators, counted across the whole pattern (top-level and nested)
	MaxStates      int // automaton arena capacity
}

// Arena is the compile-local context described in the design notes: a
// fixed-capacity, growable-up-to-cap pool of states allocated during one
// compile and discarded once the Program is built. It replaces the
// reference implementation's process-wide mutable counters with an
// explicit, non-shared value threaded through the parser.
type Arena struct {
	states []State
	limits Limits
}

// NewArena creates an arena that will refuse to grow past limits.MaxStates.
func NewArena(limits Limits) *Arena {
	return &Arena{
		states: make([]State, 0, min(limits.MaxStates, 256)),
		limits: limits,
	}
}

// Alloc appends s to the arena and returns its id, or an error if the arena
// has hit its capacity.
func (a *Arena) Alloc(s State) (StateID, error) {
	if len(a.states) >= a.limits.MaxStates {
		return InvalidState, resourceError(fmt.Sprintf("automaton state pool exhausted (limit %d)", a.limits.MaxStates))
	}
	id := StateID(len(a.states))
	a.states = append(a.states, s)
	return id, nil
}

// Get returns a pointer to the state at id for in-place patching.
func (a *Arena) Get(id StateID) *State {
	return &a.states[id]
}

// Len returns the number of states allocated so far.
func (a *Arena) Len() int {
	return len(a.states)
}

// States returns the underlying slice. The caller must not retain it beyond
// building the Program, since the arena is compile-local.
func (a *Arena) States() []State {
	return a.states
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
