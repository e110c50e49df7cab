package markov

import (
	"context"
	"log/slog"
)

// GenerateStream is the streaming counterpart of Generate. It returns a
// read-only channel that first replays the characters of initialText and
// then yields each generated character as it is drawn, which is useful for
// drip-feeding long outputs. The channel is closed once generation
// terminates or the context is cancelled. Termination rules are identical
// to Generate.
func (m *Model) GenerateStream(ctx context.Context, initialText string, targetLength int, opts ...GenerateOption) <-chan rune {
	options := &generateOptions{
		temperature: 1.0,
		topK:        0,
	}
	for _, opt := range opts {
		opt(options)
	}

	out := make(chan rune)

	go func() {
		defer close(out)

		emit := func(c rune) bool {
			select {
			case out <- c:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for _, c := range initialText {
			if !emit(c) {
				return
			}
		}

		seed := []rune(initialText)
		if len(seed) < m.windowLength {
			return
		}
		window := append([]rune(nil), seed[len(seed)-m.windowLength:]...)

		for i := 0; i < targetLength; i++ {
			table, ok := m.tables[string(window)]
			if !ok {
				m.logger.DebugContext(ctx, "Stream terminated due to unseen window",
					slog.String("window", string(window)),
					slog.Int("generated_length", i),
				)
				return
			}

			c := m.nextChar(table, options)
			if !emit(c) {
				return
			}
			window = append(window[1:], c)
		}
	}()

	return out
}
