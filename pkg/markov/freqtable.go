package markov

// CharRecord holds one character observed to follow a window, the number of
// times it was observed, and its derived probability fields. Probability and
// CumulativeProbability are only meaningful after the owning table has
// derived its distribution.
type CharRecord struct {
	Char                  rune
	Count                 int
	Probability           float64
	CumulativeProbability float64
}

// FreqTable tracks the next-character distribution for a single window.
// Records are kept in first-seen order, and cumulative probabilities are
// always computed over that order, so sampling is reproducible for a given
// training corpus.
type FreqTable struct {
	records []*CharRecord
	index   map[rune]int
	total   int
	stale   bool
}

// NewFreqTable returns an empty frequency table.
func NewFreqTable() *FreqTable {
	return &FreqTable{
		index: make(map[rune]int),
	}
}

// Record counts one observation of c following the owning window. A record
// is created on first observation and incremented afterwards. Any previously
// derived probabilities become stale until the next derive.
func (t *FreqTable) Record(c rune) {
	if i, ok := t.index[c]; ok {
		t.records[i].Count++
	} else {
		t.index[c] = len(t.records)
		t.records = append(t.records, &CharRecord{Char: c, Count: 1})
	}
	t.total++
	t.stale = true
}

// DeriveProbabilities computes Probability and CumulativeProbability for
// every record, in first-seen order. It is idempotent while the counts do
// not change, and a no-op on an empty table.
func (t *FreqTable) DeriveProbabilities() {
	if t.total == 0 {
		return
	}
	total := float64(t.total)
	cumulative := 0.0
	for _, rec := range t.records {
		rec.Probability = float64(rec.Count) / total
		cumulative += rec.Probability
		rec.CumulativeProbability = cumulative
	}
	t.stale = false
}

// Sample returns the character selected by inverse-CDF sampling for a
// uniform draw in [0, 1): the first record, in first-seen order, whose
// cumulative probability is at least the draw. If the counts changed since
// the last derive, the distribution is re-derived first, so a caller can
// never sample against stale probabilities. If floating error leaves the
// final cumulative probability below the draw, the last record is used.
// The table must be non-empty.
func (t *FreqTable) Sample(draw float64) rune {
	if t.stale {
		t.DeriveProbabilities()
	}
	for _, rec := range t.records {
		if draw <= rec.CumulativeProbability {
			return rec.Char
		}
	}
	return t.records[len(t.records)-1].Char
}

// Len returns the number of distinct characters observed for this window.
func (t *FreqTable) Len() int {
	return len(t.records)
}

// Total returns the total number of observations recorded for this window.
func (t *FreqTable) Total() int {
	return t.total
}

// Records returns the table's records in first-seen order. The slice is
// shared with the table and must not be modified by callers.
func (t *FreqTable) Records() []*CharRecord {
	return t.records
}

// remove drops the record at position i and reindexes the remainder,
// preserving first-seen order for the surviving records.
func (t *FreqTable) remove(i int) {
	rec := t.records[i]
	t.total -= rec.Count
	delete(t.index, rec.Char)
	t.records = append(t.records[:i], t.records[i+1:]...)
	for j := i; j < len(t.records); j++ {
		t.index[t.records[j].Char] = j
	}
	t.stale = true
}
