package markov

import "log/slog"

// Prune removes all records from the model whose count is less than or equal
// to minCount. This is useful for shrinking a model trained on a large
// corpus by removing rare, and often noisy, transitions. Windows left with
// no records are removed from the mapping entirely, and the surviving
// tables' probabilities are re-derived. It returns the number of records
// removed.
func (m *Model) Prune(minCount int) int {
	removed := 0
	droppedWindows := 0

	for window, table := range m.tables {
		for i := 0; i < len(table.records); {
			if table.records[i].Count <= minCount {
				table.remove(i)
				removed++
			} else {
				i++
			}
		}
		if table.Len() == 0 {
			delete(m.tables, window)
			droppedWindows++
		} else {
			table.DeriveProbabilities()
		}
	}

	m.logger.Info("Model pruned",
		slog.Int("min_count", minCount),
		slog.Int("records_removed", removed),
		slog.Int("windows_dropped", droppedWindows),
	)

	return removed
}
