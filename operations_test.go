package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossProduct(t *testing.T) {
	t.Run("alphabet mismatch", func(t *testing.T) {
		_, err := Intersection(ModularZero(2, 2), ModularZero(2, 3))
		assert.ErrorIs(t, err, ErrAlphabetMismatch)
	})

	t.Run("full cross set, no pruning", func(t *testing.T) {
		p, err := Intersection(ModularZero(2, 2), ModularZero(3, 2))
		assert.NoError(t, err)
		assert.Equal(t, 2*3, p.NumStates())
		assert.Equal(t, StatePair[int, int]{0, 0}, p.Start())
		assert.NoError(t, p.Validate())
	})

	t.Run("independent of the operands afterwards", func(t *testing.T) {
		a := ModularZero(2, 2)
		b := ModularZero(3, 2)
		p, err := Union(a, b)
		assert.NoError(t, err)

		assert.NoError(t, a.Minimize())
		a.InputSequence("111")
		assert.True(t, p.AcceptsString("11"))   // 3, divisible by 3
		assert.False(t, p.AcceptsString("101")) // 5, neither
	})
}

func TestProductCorrectness(t *testing.T) {
	a := ModularZero(2, 2)
	b := ModularZero(3, 2)

	inter, err := Intersection(a, b)
	assert.NoError(t, err)
	uni, err := Union(a, b)
	assert.NoError(t, err)
	sym, err := SymmetricDifference(a, b)
	assert.NoError(t, err)

	for _, s := range binaryStrings(6) {
		accA := a.AcceptsString(s)
		accB := b.AcceptsString(s)
		assert.Equal(t, accA && accB, inter.AcceptsString(s), "intersection of %q", s)
		assert.Equal(t, accA || accB, uni.AcceptsString(s), "union of %q", s)
		assert.Equal(t, accA != accB, sym.AcceptsString(s), "symmetric difference of %q", s)
	}
}

func TestInverse(t *testing.T) {
	a := ModularZero(3, 2)
	inv := Inverse(a)

	assert.NoError(t, inv.Validate())
	for _, s := range binaryStrings(6) {
		assert.Equal(t, !a.AcceptsString(s), inv.AcceptsString(s), "string %q", s)
	}

	t.Run("operand untouched", func(t *testing.T) {
		assert.Equal(t, []int{0}, a.Accepting())
		assert.Equal(t, []int{1, 2}, inv.Accepting())
	})

	t.Run("double inverse restores the language", func(t *testing.T) {
		back := Inverse(inv)
		for _, s := range binaryStrings(4) {
			assert.Equal(t, a.AcceptsString(s), back.AcceptsString(s), "string %q", s)
		}
	})
}

func TestProductThenMinimize(t *testing.T) {
	// mod 2 AND mod 3 is mod 6. Divisibility by 2 only inspects the last
	// digit, so residues 1/4 and 2/5 collapse and four states remain.
	p, err := Intersection(ModularZero(2, 2), ModularZero(3, 2))
	assert.NoError(t, err)
	assert.NoError(t, p.Minimize())
	assert.Equal(t, 4, p.NumStates())

	for _, s := range binaryStrings(7) {
		value := 0
		for _, c := range s {
			value = value*2 + int(c-'0')
		}
		assert.Equal(t, value%6 == 0, p.AcceptsString(s), "string %q", s)
	}
}
