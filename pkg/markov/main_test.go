package markov

import (
	"context"
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTestModel constructs a model, failing the test on error.
func newTestModel(t *testing.T, windowLength int, opts ...ModelOption) *Model {
	t.Helper()
	m, err := NewModel(windowLength, opts...)
	if err != nil {
		t.Fatalf("NewModel(%d) error = %v", windowLength, err)
	}
	return m
}

// newTrainedModel is a convenience helper that constructs a model and trains
// it on the given corpus.
func newTrainedModel(t *testing.T, windowLength int, corpus string, opts ...ModelOption) *Model {
	t.Helper()
	m := newTestModel(t, windowLength, opts...)
	if err := m.Train(context.Background(), NewReaderSource(strings.NewReader(corpus))); err != nil {
		t.Fatalf("Train() failed: %v", err)
	}
	return m
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
