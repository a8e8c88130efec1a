package dfa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// PluckLeaves returns a maximal sequence of states s_0..s_n, in pluck
// order, such that every s_i induces a finite language and every outgoing
// transition of s_i stays within s_0..s_i. It is also a maximal set of
// states inducing a finite language on its own.
//
// A state may keep self-loops and still be plucked only while it cannot
// reach acceptance: a self-loop on a state that reaches an accepting state
// witnesses infinitely many accepted strings, so such states are pinned.
// That constraint propagates backward as states are removed, which is what
// makes the procedure correct on unminimized input. O(n * |alphabet|)
// amortized.
func (d *DFA[S]) PluckLeaves() ([]S, error) {
	n := len(d.states)
	inbound := make([][]int, n)
	outCount := make([]int, n)
	selfLoops := make([]int, n)

	// canLoop starts set on every non-accepting state and is cleared when
	// a plucked successor is known to reach acceptance.
	canLoop := bitset.New(uint(n))
	for i, q := range d.states {
		if !d.IsAccept(q) {
			canLoop.Set(uint(i))
		}
	}

	for i, q := range d.states {
		for _, c := range d.alphabet {
			next := d.delta(q, c)
			j, ok := d.index[next]
			if !ok {
				return nil, fmt.Errorf("%w: transition(%v, %q) = %v is not in the state set", ErrPreconditionViolation, q, c, next)
			}
			inbound[j] = append(inbound[j], i)
			outCount[i]++
			if i == j {
				selfLoops[i]++
			}
		}
	}

	toPluck := make([]int, 0, n)
	for i, q := range d.states {
		if outCount[i] == selfLoops[i] && !d.IsAccept(q) {
			toPluck = append(toPluck, i)
		}
	}

	plucked := make([]S, 0, n)
	for len(toPluck) > 0 {
		i := toPluck[len(toPluck)-1]
		toPluck = toPluck[:len(toPluck)-1]
		plucked = append(plucked, d.states[i])

		for _, in := range inbound[i] {
			if !canLoop.Test(uint(i)) {
				canLoop.Clear(uint(in))
			}
			outCount[in]--
			if outCount[in] == selfLoops[in] && (selfLoops[in] == 0 || canLoop.Test(uint(in))) {
				toPluck = append(toPluck, in)
			}
		}
	}
	return plucked, nil
}

// IsFinite reports whether the automaton's language is a finite set.
func (d *DFA[S]) IsFinite() (bool, error) {
	plucked, err := d.PluckLeaves()
	if err != nil {
		return false, err
	}
	return slices.Contains(plucked, d.start), nil
}

// FindFinInfParts partitions the state set into the finite part (states
// that cannot reach themselves by one or more symbols) and the infinite
// part (states on a cycle). The criterion characterizes finiteness only on
// an automaton that has been minimized, which also prunes it to reachable
// states. O(n^2 * |alphabet|).
func (d *DFA[S]) FindFinInfParts() (fin, inf []S, err error) {
	for _, q := range d.states {
		reach, err := d.ReachableFrom(q, false)
		if err != nil {
			return nil, nil, err
		}
		if slices.Contains(reach, q) {
			inf = append(inf, q)
		} else {
			fin = append(fin, q)
		}
	}
	return fin, inf, nil
}

// IsFiniteMinimized is the cheap finiteness test for an automaton that has
// already been minimized: the language is finite iff the infinite part is
// a single non-accepting state absorbing under every symbol. On minimized
// input it agrees with IsFinite; elsewhere it is meaningless.
func (d *DFA[S]) IsFiniteMinimized() (bool, error) {
	_, inf, err := d.FindFinInfParts()
	if err != nil {
		return false, err
	}
	if len(inf) != 1 {
		return false, nil
	}
	sink := inf[0]
	if d.IsAccept(sink) {
		return false, nil
	}
	for _, c := range d.alphabet {
		if d.delta(sink, c) != sink {
			return false, nil
		}
	}
	return true, nil
}

// StatesFinitelyDifferent reports whether starting d at q1 versus q2
// yields languages whose symmetric difference is finite, as witnessed by a
// PluckLeaves pass over the product of the two start-shifted views. The
// views share d's states, alphabet, transitions and accepting set; only
// the start state moves.
//
// A package-level function rather than a method: it instantiates DFA over
// pair states, and a method doing that would make every instantiation of
// DFA demand the next deeper pair instantiation, without end.
func StatesFinitelyDifferent[S comparable](d *DFA[S], q1, q2 S) (bool, error) {
	if !d.contains(q1) {
		return false, fmt.Errorf("%w: state %v is not in the state set", ErrPreconditionViolation, q1)
	}
	if !d.contains(q2) {
		return false, fmt.Errorf("%w: state %v is not in the state set", ErrPreconditionViolation, q2)
	}

	accepts := d.Accepting()
	d1 := New(d.states, d.alphabet, d.delta, q1, accepts)
	d2 := New(d.states, d.alphabet, d.delta, q2, accepts)
	sd, err := SymmetricDifference(d1, d2)
	if err != nil {
		return false, err
	}
	return sd.IsFinite()
}
