package dfa

// Minimize reduces the automaton, in place, to the fewest states
// recognizing the same language: unreachable states are dropped, then the
// remaining states are partitioned by Moore refinement starting from the
// accepting / non-accepting split. O(n^2 * |alphabet|) in the number of
// states. Side effect: the relative ordering of states is not preserved.
//
// Each surviving equivalence class is labeled by its first member in class
// construction order, so minimizing an already minimal, fully reachable
// automaton changes nothing but possibly the labeling.
func (d *DFA[S]) Minimize() error {
	// Step 1: keep only states reachable from the start state.
	states, err := d.Reachable()
	if err != nil {
		return err
	}

	// Step 2: refine the accepting / non-accepting partition until no
	// class splits. A class splits on a symbol when its members disagree,
	// with the class's first state as reference, about which class the
	// symbol leads to.
	var acc, nonacc []S
	for _, q := range states {
		if d.IsAccept(q) {
			acc = append(acc, q)
		} else {
			nonacc = append(nonacc, q)
		}
	}
	classes := make([][]S, 0, 2)
	if len(acc) > 0 {
		classes = append(classes, acc)
	}
	if len(nonacc) > 0 {
		classes = append(classes, nonacc)
	}

	for changed := true; changed; {
		changed = false
		classOf := make(map[S]int, len(states))
		for i, cl := range classes {
			for _, q := range cl {
				classOf[q] = i
			}
		}
	pass:
		for i, cl := range classes {
			for _, c := range d.alphabet {
				ref := classOf[d.delta(cl[0], c)]
				var stay, split []S
				for _, q := range cl {
					if classOf[d.delta(q, c)] == ref {
						stay = append(stay, q)
					} else {
						split = append(split, q)
					}
				}
				if len(split) > 0 {
					classes[i] = stay
					classes = append(classes, split)
					changed = true
					break pass
				}
			}
		}
	}

	// Step 3: one representative per class; transitions follow the old
	// transition function and land on the target's representative.
	newStates := make([]S, 0, len(classes))
	repOf := make(map[S]S, len(states))
	newStart := d.start
	newCurrent := d.current
	for _, cl := range classes {
		rep := cl[0]
		newStates = append(newStates, rep)
		for _, q := range cl {
			repOf[q] = rep
			if q == d.start {
				newStart = rep
			}
			if q == d.current {
				newCurrent = rep
			}
		}
	}

	newAccepts := make(map[S]struct{})
	table := make(map[S]map[rune]S, len(newStates))
	for _, q := range newStates {
		if d.IsAccept(q) {
			newAccepts[q] = struct{}{}
		}
		row := make(map[rune]S, len(d.alphabet))
		for _, c := range d.alphabet {
			row[c] = repOf[d.delta(q, c)]
		}
		table[q] = row
	}

	d.states = newStates
	d.index = stateIndex(newStates)
	d.start = newStart
	d.current = newCurrent
	d.accepts = newAccepts
	d.delta = FromTable(table)
	return nil
}
