package dfa

import "fmt"

// StatePair identifies a state of a product automaton: one state from each
// operand. It is comparable whenever the operand state types are, so
// product automata are ordinary DFA values and compose further.
type StatePair[S1, S2 comparable] struct {
	First  S1
	Second S2
}

// CrossProduct is the generalized product construction over two automata
// with the same alphabet. The result's state set is the full cross set of
// the operands' states, its transitions apply the operands' transitions
// componentwise, and a pair accepts iff combine(a1, a2) holds for the
// operands' acceptance values. Choosing AND, OR or XOR for combine yields
// intersection, union and symmetric difference of the languages.
//
// The result is deliberately not minimized and performs no reachability
// pruning; it has exactly |d1.states| * |d2.states| states. Compose first,
// then call Minimize if wanted. The result shares no mutable structure
// with the operands.
//
// Operands with different alphabets (as sets) surface ErrAlphabetMismatch.
func CrossProduct[S1, S2 comparable](d1 *DFA[S1], d2 *DFA[S2], combine func(a1, a2 bool) bool) (*DFA[StatePair[S1, S2]], error) {
	if !alphabetsEqual(d1.alphabet, d2.alphabet) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrAlphabetMismatch, string(d1.alphabet), string(d2.alphabet))
	}

	states := make([]StatePair[S1, S2], 0, len(d1.states)*len(d2.states))
	accepts := make([]StatePair[S1, S2], 0)
	for _, s1 := range d1.states {
		for _, s2 := range d2.states {
			p := StatePair[S1, S2]{s1, s2}
			states = append(states, p)
			if combine(d1.IsAccept(s1), d2.IsAccept(s2)) {
				accepts = append(accepts, p)
			}
		}
	}

	delta1, delta2 := d1.delta, d2.delta
	delta := func(p StatePair[S1, S2], c rune) StatePair[S1, S2] {
		return StatePair[S1, S2]{delta1(p.First, c), delta2(p.Second, c)}
	}

	start := StatePair[S1, S2]{d1.start, d2.start}
	return New(states, d1.alphabet, delta, start, accepts), nil
}

// Intersection builds an unminimized automaton recognizing the
// intersection of the operands' languages.
func Intersection[S1, S2 comparable](d1 *DFA[S1], d2 *DFA[S2]) (*DFA[StatePair[S1, S2]], error) {
	return CrossProduct(d1, d2, func(a1, a2 bool) bool { return a1 && a2 })
}

// Union builds an unminimized automaton recognizing the union of the
// operands' languages.
func Union[S1, S2 comparable](d1 *DFA[S1], d2 *DFA[S2]) (*DFA[StatePair[S1, S2]], error) {
	return CrossProduct(d1, d2, func(a1, a2 bool) bool { return a1 || a2 })
}

// SymmetricDifference builds an unminimized automaton recognizing the
// symmetric difference of the operands' languages.
func SymmetricDifference[S1, S2 comparable](d1 *DFA[S1], d2 *DFA[S2]) (*DFA[StatePair[S1, S2]], error) {
	return CrossProduct(d1, d2, func(a1, a2 bool) bool { return a1 != a2 })
}

// Inverse builds an automaton recognizing the complement of d's language:
// the accepting set is flipped and everything else is carried over. The
// transition function is shared; that is safe because no operation mutates
// a transition function in place, they swap in a rebuilt one.
func Inverse[S comparable](d *DFA[S]) *DFA[S] {
	accepts := make([]S, 0, len(d.states))
	for _, q := range d.states {
		if !d.IsAccept(q) {
			accepts = append(accepts, q)
		}
	}
	return New(d.states, d.alphabet, d.delta, d.start, accepts)
}

func alphabetsEqual(a, b []rune) bool {
	as := make(map[rune]struct{}, len(a))
	for _, c := range a {
		as[c] = struct{}{}
	}
	bs := make(map[rune]struct{}, len(b))
	for _, c := range b {
		bs[c] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for c := range bs {
		if _, ok := as[c]; !ok {
			return false
		}
	}
	return true
}
