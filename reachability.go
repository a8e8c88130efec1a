package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ReachableFrom returns the states reachable from q by zero or more input
// symbols, in discovery order. q itself is part of the result iff inclusive
// is set or q is reachable from itself by at least one symbol. The automaton
// is never mutated.
//
// A transition that leaves the state set surfaces ErrPreconditionViolation;
// that can only happen on an automaton that would fail Validate.
func (d *DFA[S]) ReachableFrom(q S, inclusive bool) ([]S, error) {
	if !d.contains(q) {
		return nil, fmt.Errorf("%w: state %v is not in the state set", ErrPreconditionViolation, q)
	}

	seen := bitset.New(uint(len(d.states)))
	reached := make([]S, 0, len(d.states))
	if inclusive {
		seen.Set(uint(d.index[q]))
		reached = append(reached, q)
	}

	stack := []S{q}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range d.alphabet {
			next := d.delta(s, c)
			i, ok := d.index[next]
			if !ok {
				return nil, fmt.Errorf("%w: transition(%v, %q) = %v is not in the state set", ErrPreconditionViolation, s, c, next)
			}
			if !seen.Test(uint(i)) {
				seen.Set(uint(i))
				reached = append(reached, next)
				stack = append(stack, next)
			}
		}
	}
	return reached, nil
}

// Reachable returns the subset of states reachable from the start state.
func (d *DFA[S]) Reachable() ([]S, error) {
	return d.ReachableFrom(d.start, true)
}

// Levels returns the distance, in input symbols, of every reachable state
// from the start state.
func (d *DFA[S]) Levels() (map[S]int, error) {
	if !d.contains(d.start) {
		return nil, fmt.Errorf("%w: start state %v is not in the state set", ErrPreconditionViolation, d.start)
	}

	levels := map[S]int{d.start: 0}
	frontier := []S{d.start}
	for level := 1; len(frontier) > 0; level++ {
		var next []S
		for _, q := range frontier {
			for _, c := range d.alphabet {
				t := d.delta(q, c)
				if !d.contains(t) {
					return nil, fmt.Errorf("%w: transition(%v, %q) = %v is not in the state set", ErrPreconditionViolation, q, c, t)
				}
				if _, ok := levels[t]; !ok {
					levels[t] = level
					next = append(next, t)
				}
			}
		}
		frontier = next
	}
	return levels, nil
}
