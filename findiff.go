package dfa

// FiniteDifferenceMinimize collapses d, in place, into the smallest
// automaton whose language differs from the input's by only a finite set
// of strings.
//
// The automaton is minimized first, then its states are grouped into
// classes of pairwise finitely different states: a pair belongs together
// iff the pair state (q, r) of the automaton's symmetric difference with
// itself induces a finite language, read off one PluckLeaves pass over
// that product. Within each class every finite-part member is merged into
// an infinite-part representative when the class has one, otherwise into
// the class's first member. Merge order within a class does not affect the
// result beyond the choice of surviving labels.
//
// A package-level function for the same reason as StatesFinitelyDifferent:
// it instantiates DFA over pair states, which a method on DFA cannot do
// without forcing unbounded further instantiation.
func FiniteDifferenceMinimize[S comparable](d *DFA[S]) error {
	if err := d.Minimize(); err != nil {
		return err
	}

	_, inf, err := d.FindFinInfParts()
	if err != nil {
		return err
	}
	infPart := make(map[S]struct{}, len(inf))
	for _, q := range inf {
		infPart[q] = struct{}{}
	}

	sd, err := SymmetricDifference(d, d)
	if err != nil {
		return err
	}
	plucked, err := sd.PluckLeaves()
	if err != nil {
		return err
	}
	similar := make(map[StatePair[S, S]]struct{}, len(plucked))
	for _, p := range plucked {
		similar[p] = struct{}{}
	}

	var classes [][]S
	for _, q := range d.states {
		placed := false
		for i, cl := range classes {
			if _, ok := similar[StatePair[S, S]{q, cl[0]}]; ok {
				classes[i] = append(cl, q)
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, []S{q})
		}
	}

	for _, cl := range classes {
		var fins, infs []S
		for _, q := range cl {
			if _, ok := infPart[q]; ok {
				infs = append(infs, q)
			} else {
				fins = append(fins, q)
			}
		}
		rep := cl[0]
		if len(infs) > 0 {
			rep = infs[0]
		} else {
			fins = fins[1:]
		}
		for _, q := range fins {
			if err := d.StateMerge(q, rep); err != nil {
				return err
			}
		}
	}
	return nil
}
