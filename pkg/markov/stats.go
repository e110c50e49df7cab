package markov

// ModelStats holds aggregated statistics for a trained model.
type ModelStats struct {
	Windows      int // The number of distinct windows in the mapping.
	Records      int // The number of unique (window, character) records.
	Observations int // The sum of all counts; the total number of trained transitions.
}

// Stats returns a snapshot of the model's mapping sizes.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{Windows: len(m.tables)}
	for _, table := range m.tables {
		stats.Records += table.Len()
		stats.Observations += table.Total()
	}
	return stats
}
