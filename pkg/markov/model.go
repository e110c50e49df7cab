package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"
)

// Model is a fixed-order character-level Markov chain. It owns the mapping
// from each observed window to that window's next-character distribution,
// along with the random source used during generation. A Model is built for
// single-owner use: train and generate from one goroutine at a time.
type Model struct {
	windowLength int
	tables       map[string]*FreqTable
	rng          *rand.Rand
	logger       *slog.Logger
}

// ModelOption is a function that configures a Model at construction time.
type ModelOption func(*Model)

// WithSeed seeds the model's random source deterministically. Two models
// with the same seed, trained on identical corpora, generate identical text.
func WithSeed(seed uint64) ModelOption {
	return func(m *Model) {
		m.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRandSource sets a custom random source for the model.
func WithRandSource(src rand.Source) ModelOption {
	return func(m *Model) {
		m.rng = rand.New(src)
	}
}

// WithLogger sets the logger used during training and generation.
func WithLogger(logger *slog.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel creates a model with the given window length, which must be
// positive. By default the random source is unpredictably seeded and all
// logs are discarded; both can be overridden with ModelOption functions.
func NewModel(windowLength int, opts ...ModelOption) (*Model, error) {
	if windowLength < 1 {
		return nil, fmt.Errorf("window length must be positive, got %d", windowLength)
	}

	m := &Model{
		windowLength: windowLength,
		tables:       make(map[string]*FreqTable),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// WindowLength returns the window length the model was constructed with.
func (m *Model) WindowLength() int {
	return m.windowLength
}

// SetLogger sets the logger for the model. By default, all logs are
// discarded. Providing a `log/slog.Logger` will enable logging for training,
// generation, and pruning.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Dump writes a human-readable listing of the model's mapping to w, one
// window per line with its records in first-seen order. Windows are sorted
// so the output is stable. This is a debugging aid, not a storage format.
func (m *Model) Dump(w io.Writer) error {
	windows := make([]string, 0, len(m.tables))
	for window := range m.tables {
		windows = append(windows, window)
	}
	sort.Strings(windows)

	for _, window := range windows {
		if _, err := fmt.Fprintf(w, "%q :", window); err != nil {
			return err
		}
		for _, rec := range m.tables[window].Records() {
			if _, err := fmt.Fprintf(w, " %q=%d(%.4f/%.4f)", rec.Char, rec.Count, rec.Probability, rec.CumulativeProbability); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
