package markov

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestTrain(t *testing.T) {
	m := newTrainedModel(t, 1, "aba", WithSeed(20))

	if len(m.tables) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(m.tables))
	}

	tableA, ok := m.tables["a"]
	if !ok {
		t.Fatal("expected a table for window \"a\"")
	}
	if tableA.Len() != 1 || tableA.Records()[0].Char != 'b' || tableA.Records()[0].Count != 1 {
		t.Errorf("window \"a\": expected exactly {b:1}, got %+v", tableA.Records())
	}

	tableB, ok := m.tables["b"]
	if !ok {
		t.Fatal("expected a table for window \"b\"")
	}
	if tableB.Len() != 1 || tableB.Records()[0].Char != 'a' || tableB.Records()[0].Count != 1 {
		t.Errorf("window \"b\": expected exactly {a:1}, got %+v", tableB.Records())
	}
}

func TestTrainInsufficientInput(t *testing.T) {
	m := newTestModel(t, 5)

	err := m.Train(context.Background(), NewReaderSource(strings.NewReader("abc")))
	if err == nil {
		t.Fatal("expected an error for a corpus shorter than the window length")
	}

	var insufficient *InsufficientInputError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected *InsufficientInputError, got %T: %v", err, err)
	}
	if insufficient.WindowLength != 5 || insufficient.Read != 3 {
		t.Errorf("error fields = (%d, %d), want (5, 3)", insufficient.WindowLength, insufficient.Read)
	}
}

func TestTrainCorpusExactlyWindowLength(t *testing.T) {
	m := newTestModel(t, 3)

	// The initial window consumes the whole corpus; nothing follows it, so
	// the mapping stays empty, but this is not an error.
	if err := m.Train(context.Background(), NewReaderSource(strings.NewReader("abc"))); err != nil {
		t.Fatalf("Train() failed: %v", err)
	}
	if len(m.tables) != 0 {
		t.Errorf("expected an empty mapping, got %d windows", len(m.tables))
	}
}

func TestTrainAccumulatesAcrossCalls(t *testing.T) {
	m := newTrainedModel(t, 1, "aba")

	if err := m.TrainString(context.Background(), "aba"); err != nil {
		t.Fatalf("second Train() failed: %v", err)
	}

	tableA := m.tables["a"]
	if tableA == nil || tableA.Records()[0].Count != 2 {
		t.Errorf("expected count for \"a\"->'b' to accumulate to 2, got %+v", tableA.Records())
	}
}

func TestTrainProbabilityInvariants(t *testing.T) {
	corpus := "the quick brown fox jumps over the lazy dog. the dog did not care."
	for _, windowLength := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("WindowLength%d", windowLength), func(t *testing.T) {
			m := newTrainedModel(t, windowLength, corpus)

			for window, table := range m.tables {
				var sum float64
				prevCumulative := 0.0
				for _, rec := range table.Records() {
					sum += rec.Probability
					if rec.CumulativeProbability < prevCumulative {
						t.Errorf("window %q: cumulative probability not non-decreasing", window)
					}
					prevCumulative = rec.CumulativeProbability
				}
				if math.Abs(sum-1.0) > probTolerance {
					t.Errorf("window %q: probabilities sum to %v", window, sum)
				}
				if math.Abs(prevCumulative-1.0) > probTolerance {
					t.Errorf("window %q: final cumulative probability is %v", window, prevCumulative)
				}
			}
		})
	}
}

// failingSource returns a non-EOF error after yielding its characters.
type failingSource struct {
	runes []rune
	err   error
}

func (s *failingSource) Next() (rune, error) {
	if len(s.runes) == 0 {
		return 0, s.err
	}
	c := s.runes[0]
	s.runes = s.runes[1:]
	return c, nil
}

func TestTrainSourceError(t *testing.T) {
	m := newTestModel(t, 2)
	srcErr := errors.New("disk on fire")

	err := m.Train(context.Background(), &failingSource{runes: []rune("abcd"), err: srcErr})
	if !errors.Is(err, srcErr) {
		t.Fatalf("expected the source error to be wrapped, got %v", err)
	}
}

func BenchmarkTrain(b *testing.B) {
	corpus := createBenchmarkCorpus()
	ctx := context.Background()

	for _, windowLength := range []int{1, 2, 3, 5, 8} {
		b.Run(fmt.Sprintf("WindowLength%d", windowLength), func(b *testing.B) {
			b.SetBytes(int64(len(corpus)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m, err := NewModel(windowLength, WithSeed(20))
				if err != nil {
					b.Fatalf("NewModel() failed: %v", err)
				}
				if err := m.Train(ctx, NewReaderSource(strings.NewReader(corpus))); err != nil {
					b.Fatalf("Train() failed: %v", err)
				}
			}
		})
	}
}
