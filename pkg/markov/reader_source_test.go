package markov

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderSource(t *testing.T) {
	src := NewReaderSource(strings.NewReader("héllo→"))

	want := []rune{'h', 'é', 'l', 'l', 'o', '→'}
	for i, expected := range want {
		c, err := src.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if c != expected {
			t.Errorf("Next() #%d = %q, want %q", i, c, expected)
		}
	}

	if _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after exhaustion, got %v", err)
	}
}

func TestTrainMultibyteCharacters(t *testing.T) {
	// Window length is measured in characters, not bytes.
	m := newTrainedModel(t, 1, "éßéßé", WithSeed(20))

	if got := m.Generate("é", 2); got != "éßé" {
		t.Errorf("Generate(\"é\", 2) = %q, want %q", got, "éßé")
	}
}
