package dfa

import (
	"fmt"
)

// TransitionFunc is a total transition function: for every state in the
// automaton's state set and every symbol in its alphabet it must return a
// member of the state set. It may be a computed rule or a closure over a
// table; see FromTable for the table form. Totality is an invariant of the
// automaton, checked by Validate, not enforced on every call.
type TransitionFunc[S comparable] func(state S, symbol rune) S

// FromTable adapts a transition table to a TransitionFunc.
func FromTable[S comparable](table map[S]map[rune]S) TransitionFunc[S] {
	return func(state S, symbol rune) S {
		return table[state][symbol]
	}
}

// DFA is a deterministic finite acceptor over a finite rune alphabet.
// State identifiers are any comparable type chosen by the caller; they are
// kept in insertion order so that repeated runs produce the same output.
//
// A DFA carries a mutable cursor (the current state) driven by Input and
// Reset. Mutating operations (StateMerge, Minimize,
// FiniteDifferenceMinimize) rebuild the whole record and swap it in as a
// unit, so a half-updated automaton is never observable. Read-only
// operations never touch the operand.
type DFA[S comparable] struct {
	states   []S
	index    map[S]int
	alphabet []rune
	delta    TransitionFunc[S]
	start    S
	accepts  map[S]struct{}
	current  S
}

// New builds a DFA from its five defining pieces. Nothing is checked
// eagerly; call Validate before relying on any algorithm if the inputs are
// not known-good. The current state starts at start.
func New[S comparable](states []S, alphabet []rune, delta TransitionFunc[S], start S, accepts []S) *DFA[S] {
	d := &DFA[S]{
		states:   append([]S(nil), states...),
		alphabet: append([]rune(nil), alphabet...),
		delta:    delta,
		start:    start,
		accepts:  make(map[S]struct{}, len(accepts)),
		current:  start,
	}
	d.index = stateIndex(d.states)
	for _, q := range accepts {
		d.accepts[q] = struct{}{}
	}
	return d
}

func stateIndex[S comparable](states []S) map[S]int {
	index := make(map[S]int, len(states))
	for i, q := range states {
		index[q] = i
	}
	return index
}

// States returns the state set in insertion order.
func (d *DFA[S]) States() []S {
	return append([]S(nil), d.states...)
}

// NumStates returns how many states this automaton has.
func (d *DFA[S]) NumStates() int {
	return len(d.states)
}

// Alphabet returns the input alphabet.
func (d *DFA[S]) Alphabet() []rune {
	return append([]rune(nil), d.alphabet...)
}

// Start returns the start state.
func (d *DFA[S]) Start() S {
	return d.start
}

// Current returns the state the cursor is at.
func (d *DFA[S]) Current() S {
	return d.current
}

// IsAccept reports whether state is an accepting state.
func (d *DFA[S]) IsAccept(state S) bool {
	_, ok := d.accepts[state]
	return ok
}

// Accepting returns the accepting states, in state-set order.
func (d *DFA[S]) Accepting() []S {
	out := make([]S, 0, len(d.accepts))
	for _, q := range d.states {
		if d.IsAccept(q) {
			out = append(out, q)
		}
	}
	return out
}

// Step applies the transition function once without moving the cursor.
func (d *DFA[S]) Step(state S, symbol rune) S {
	return d.delta(state, symbol)
}

func (d *DFA[S]) contains(state S) bool {
	_, ok := d.index[state]
	return ok
}

// Input advances the current state on a single symbol.
func (d *DFA[S]) Input(symbol rune) {
	d.current = d.delta(d.current, symbol)
}

// InputSequence advances the current state on each symbol of seq in order.
func (d *DFA[S]) InputSequence(seq string) {
	for _, c := range seq {
		d.Input(c)
	}
}

// Status reports whether the current state is accepting.
func (d *DFA[S]) Status() bool {
	return d.IsAccept(d.current)
}

// Reset returns the cursor to the start state.
func (d *DFA[S]) Reset() {
	d.current = d.start
}

// AcceptsString reports whether the automaton accepts seq. The cursor is
// saved and restored, so the call is observably read-only.
func (d *DFA[S]) AcceptsString(seq string) bool {
	saved := d.current
	d.Reset()
	d.InputSequence(seq)
	ok := d.Status()
	d.current = saved
	return ok
}

// Validate checks the four structural invariants:
//
//  1. every accepting state is in the state set
//  2. the start state is in the state set
//  3. the current state is in the state set
//  4. every transition lands in the state set
//
// It reports ErrInvariantViolation naming the failing clause. The check
// walks the full states x alphabet table, so it is meant for debugging and
// tests rather than hot paths.
func (d *DFA[S]) Validate() error {
	for q := range d.accepts {
		if !d.contains(q) {
			return fmt.Errorf("%w: accept state %v is not in the state set", ErrInvariantViolation, q)
		}
	}
	if !d.contains(d.start) {
		return fmt.Errorf("%w: start state %v is not in the state set", ErrInvariantViolation, d.start)
	}
	if !d.contains(d.current) {
		return fmt.Errorf("%w: current state %v is not in the state set", ErrInvariantViolation, d.current)
	}
	for _, q := range d.states {
		for _, c := range d.alphabet {
			if next := d.delta(q, c); !d.contains(next) {
				return fmt.Errorf("%w: transition(%v, %q) = %v is not in the state set", ErrInvariantViolation, q, c, next)
			}
		}
	}
	return nil
}
