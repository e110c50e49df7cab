package markov

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// InsufficientInputError is returned by Train when the corpus is exhausted
// before a full initial window could be read. It is not recoverable; the
// caller must supply a corpus of at least windowLength+1 characters.
type InsufficientInputError struct {
	WindowLength int
	Read         int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("corpus too short: need %d characters for the initial window, got %d", e.WindowLength, e.Read)
}

// Train consumes the character source and accumulates its sliding-window
// transition counts into the model's mapping. The first windowLength
// characters form the initial window; every following character is recorded
// against the current window, which then rolls forward by one. Once the
// source is exhausted, every table's probability distribution is derived.
//
// Counts are cumulative across calls: training an already-trained model adds
// to the existing mapping. Callers needing a clean retrain must construct a
// new model.
func (m *Model) Train(ctx context.Context, src CharSource) error {
	window := make([]rune, 0, m.windowLength)
	for len(window) < m.windowLength {
		c, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &InsufficientInputError{WindowLength: m.windowLength, Read: len(window)}
			}
			return fmt.Errorf("character source error: %w", err)
		}
		window = append(window, c)
	}

	charCount := m.windowLength
	for {
		c, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("character source error: %w", err)
		}

		key := string(window)
		table, ok := m.tables[key]
		if !ok {
			table = NewFreqTable()
			m.tables[key] = table
		}
		table.Record(c)

		window = append(window[1:], c)
		charCount++
	}

	for _, table := range m.tables {
		table.DeriveProbabilities()
	}

	m.logger.InfoContext(ctx, "Training completed",
		slog.Int("window_length", m.windowLength),
		slog.Int("characters_read", charCount),
		slog.Int("windows", len(m.tables)),
	)

	return nil
}

// TrainString is a convenience wrapper around Train that uses a string as
// the corpus.
func (m *Model) TrainString(ctx context.Context, corpus string) error {
	return m.Train(ctx, newStringSource(corpus))
}

// stringSource is a CharSource over an in-memory string, used by TrainString.
type stringSource struct {
	runes []rune
	pos   int
}

func newStringSource(s string) *stringSource {
	return &stringSource{runes: []rune(s)}
}

func (s *stringSource) Next() (rune, error) {
	if s.pos >= len(s.runes) {
		return 0, io.EOF
	}
	c := s.runes[s.pos]
	s.pos++
	return c, nil
}
