// SPDX-License-Identifier: MIT
package automaton

import (
	"fmt"

	"github.com/cnf/structhash"
)

// State is an identity carrying an arbitrary payload: a graph node id, a
// tensor-product pair, or a nested tuple for an RSM state. Two states are
// equal iff their payloads are equal.
type State struct {
	Payload interface{}
}

// NewState wraps payload as a State.
func NewState(payload interface{}) State {
	return State{Payload: payload}
}

// key computes a canonical, comparable map key for s.Payload. Payloads are
// frequently nested tuples ((Variable, dfaState) pairs for RSM states,
// (int, int) pairs for tensor products) that Go would otherwise require a
// bespoke Hash() method for; structhash.Hash gives one canonical key for
// any payload shape.
func (s State) key() string {
	h, err := structhash.Hash(s.Payload, 1)
	if err != nil {
		// Hash only fails on unsupported reflect kinds (chan, func); every
		// payload shape used by this module (ints, strings, pairs, State
		// itself) is supported, so this should never trigger.
		panic(fmt.Sprintf("automaton: unhashable state payload %#v: %v", s.Payload, err))
	}

	return h
}

// StateIndex is a bijection between State and a dense integer range
// [0, n). Insertion order determines the assigned index; Add is idempotent
// for a payload already present.
type StateIndex struct {
	states []State
	toIdx  map[string]int
}

// NewStateIndex returns an empty StateIndex.
func NewStateIndex() *StateIndex {
	return &StateIndex{toIdx: make(map[string]int)}
}

// Add inserts s if absent and returns its index.
func (si *StateIndex) Add(s State) int {
	k := s.key()
	if idx, ok := si.toIdx[k]; ok {
		return idx
	}
	idx := len(si.states)
	si.states = append(si.states, s)
	si.toIdx[k] = idx

	return idx
}

// IndexOf returns the index of s and whether it was found.
func (si *StateIndex) IndexOf(s State) (int, bool) {
	idx, ok := si.toIdx[s.key()]
	return idx, ok
}

// StateAt returns the state at idx. Panics if idx is out of range, which is
// a developer-misuse condition, not a user error.
func (si *StateIndex) StateAt(idx int) State {
	return si.states[idx]
}

// Len returns the number of indexed states.
func (si *StateIndex) Len() int {
	return len(si.states)
}

// States returns the indexed states in index order. The returned slice
// must not be mutated by the caller.
func (si *StateIndex) States() []State {
	return si.states
}
