package markov

import (
	"log/slog"
	"math"
	"sort"
	"strings"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	temperature float64
	topK        int
}

// GenerateOption is a function that configures generation parameters. It's
// used as a variadic argument in Generate and GenerateStream.
type GenerateOption func(*generateOptions)

// WithTemperature adjusts the randomness of character selection.
// A value of 1.0 is the standard inverse-CDF weighted selection.
// Values > 1.0 increase randomness (making rare characters more likely).
// Values < 1.0 decrease randomness (making frequent characters even more likely).
// A value of 0 or less results in deterministic selection (always choosing
// the most frequent character).
func WithTemperature(t float64) GenerateOption {
	return func(o *generateOptions) { o.temperature = t }
}

// WithTopK restricts the selection pool to the top `k` most frequent
// characters at each step. A value of 0 disables Top-K sampling.
func WithTopK(k int) GenerateOption {
	return func(o *generateOptions) { o.topK = k }
}

// Generate extends initialText by up to targetLength characters drawn from
// the trained mapping and returns the result. The last windowLength
// characters of initialText seed the rolling window; if initialText is
// shorter than the window length there is nothing to seed from and it is
// returned unchanged. Generation stops early, without error, when the
// current window was never observed during training. The returned string
// always starts with initialText.
func (m *Model) Generate(initialText string, targetLength int, opts ...GenerateOption) string {
	options := &generateOptions{
		temperature: 1.0,
		topK:        0,
	}
	for _, opt := range opts {
		opt(options)
	}

	seed := []rune(initialText)
	if len(seed) < m.windowLength {
		return initialText
	}

	window := append([]rune(nil), seed[len(seed)-m.windowLength:]...)

	var builder strings.Builder
	builder.WriteString(initialText)

	for i := 0; i < targetLength; i++ {
		table, ok := m.tables[string(window)]
		if !ok { // Dead end in chain
			m.logger.Debug("Generation terminated due to unseen window",
				slog.String("window", string(window)),
				slog.Int("generated_length", i),
			)
			break
		}

		c := m.nextChar(table, options)
		builder.WriteRune(c)
		window = append(window[1:], c)
	}

	return builder.String()
}

// nextChar abstracts character selection from the generation loops. The
// default path (temperature 1, no top-K) is a single inverse-CDF sample off
// the table's cumulative distribution.
func (m *Model) nextChar(table *FreqTable, options *generateOptions) rune {
	records := table.Records()

	// topK filtering. Sort a copy; the table's own order is load-bearing
	// for its cumulative probabilities.
	if options.topK > 0 && options.topK < len(records) {
		records = append([]*CharRecord(nil), records...)
		sort.Slice(records, func(i, j int) bool {
			return records[i].Count > records[j].Count
		})
		records = records[:options.topK]
	} else if options.temperature == 1.0 {
		return table.Sample(m.rng.Float64())
	}

	if options.temperature <= 0 { // Deterministic
		best := records[0]
		for _, rec := range records[1:] {
			if rec.Count > best.Count {
				best = rec
			}
		}
		return best.Char
	}

	if options.temperature == 1.0 { // Standard weighted random over the pool
		totalCount := 0
		for _, rec := range records {
			totalCount += rec.Count
		}
		randChoice := m.rng.IntN(totalCount)
		for _, rec := range records {
			randChoice -= rec.Count
			if randChoice < 0 {
				return rec.Char
			}
		}
		return records[len(records)-1].Char
	}

	// Temperature-based sampling
	logWeights := make([]float64, len(records))
	maxLog := math.Inf(-1)
	for i, rec := range records {
		lw := math.Log(float64(rec.Count)) / options.temperature
		logWeights[i] = lw
		if lw > maxLog {
			maxLog = lw
		}
	}
	var totalWeight float64
	weights := make([]float64, len(records))
	for i, lw := range logWeights {
		w := math.Exp(lw - maxLog)
		weights[i] = w
		totalWeight += w
	}
	randChoice := m.rng.Float64() * totalWeight
	for i, rec := range records {
		randChoice -= weights[i]
		if randChoice < 0 {
			return rec.Char
		}
	}
	return records[len(records)-1].Char
}
