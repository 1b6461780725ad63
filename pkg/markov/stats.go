package markov

// ModelStats holds aggregated counts for a trained model.
type ModelStats struct {
	Order          int // The fixed phrase length.
	StarterPhrases int // Recorded sentence starters, duplicates included.
	Phrases        int // Distinct phrases with at least one transition.
	Transitions    int // Total recorded transitions, duplicates included.
	MaxFanout      int // The largest transition list attached to any phrase.
}

// Stats returns a snapshot of the model's aggregate counts.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{
		Order:          m.order,
		StarterPhrases: len(m.starters),
		Phrases:        len(m.transitions),
	}
	for _, ts := range m.transitions {
		stats.Transitions += len(ts)
		if len(ts) > stats.MaxFanout {
			stats.MaxFanout = len(ts)
		}
	}
	return stats
}
