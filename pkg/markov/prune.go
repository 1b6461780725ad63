package markov

// Prune returns a copy of the model without the transitions observed at most
// minCount times, which removes rare and often noisy paths from generation.
// Phrases left with no transitions are dropped entirely so every remaining
// key still maps to a non-empty list; dead-ending a walk at such a phrase is
// exactly how pruning shortens output. Starter phrases and the source model
// are left untouched.
func (m *Model) Prune(minCount int) *Model {
	pruned := &Model{
		order:       m.order,
		starters:    m.Starters(),
		transitions: make(map[string][]Transition, len(m.transitions)),
	}

	for phrase, ts := range m.transitions {
		counts := make(map[Transition]int, len(ts))
		for _, t := range ts {
			counts[t]++
		}

		kept := make([]Transition, 0, len(ts))
		for _, t := range ts {
			if counts[t] > minCount {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 {
			pruned.transitions[phrase] = kept
		}
	}

	return pruned
}
