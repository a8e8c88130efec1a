package dfa

import "fmt"

// StateMerge merges q1 into q2: q1 leaves the state set (and the accepting
// set), every transition into q1 is redirected to q2, and the start and
// current states move to q2 if either was q1. Transitions out of q1 vanish
// with it, so q1 must not still be needed as a live source. This is the one
// primitive by which an automaton shrinks.
//
// The replacement transition table is built in full before any field
// changes, so a failed call leaves the automaton untouched.
func (d *DFA[S]) StateMerge(q1, q2 S) error {
	if q1 == q2 {
		return fmt.Errorf("%w: cannot merge state %v into itself", ErrPreconditionViolation, q1)
	}
	if !d.contains(q1) {
		return fmt.Errorf("%w: state %v is not in the state set", ErrPreconditionViolation, q1)
	}
	if !d.contains(q2) {
		return fmt.Errorf("%w: state %v is not in the state set", ErrPreconditionViolation, q2)
	}

	states := make([]S, 0, len(d.states)-1)
	table := make(map[S]map[rune]S, len(d.states)-1)
	for _, s := range d.states {
		if s == q1 {
			continue
		}
		states = append(states, s)
		row := make(map[rune]S, len(d.alphabet))
		for _, c := range d.alphabet {
			next := d.delta(s, c)
			if next == q1 {
				next = q2
			}
			row[c] = next
		}
		table[s] = row
	}

	d.states = states
	d.index = stateIndex(states)
	delete(d.accepts, q1)
	if d.start == q1 {
		d.start = q2
	}
	if d.current == q1 {
		d.current = q2
	}
	d.delta = FromTable(table)
	return nil
}
