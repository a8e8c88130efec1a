package dfa

// ModularZero returns an automaton over the digit alphabet of the given
// base (at most 10) accepting exactly the numerals whose value is zero
// modulo n. Reading digit c from state q moves to (q*base + c) mod n, so
// the state is always the value of the digits read so far, modulo n. The
// empty string is in the language.
func ModularZero(n, base int) *DFA[int] {
	states := make([]int, n)
	for i := range states {
		states[i] = i
	}
	alphabet := make([]rune, base)
	for i := range alphabet {
		alphabet[i] = rune('0' + i)
	}
	delta := func(q int, c rune) int {
		return (q*base + int(c-'0')) % n
	}
	return New(states, alphabet, delta, 0, []int{0})
}
