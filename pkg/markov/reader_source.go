package markov

import (
	"bufio"
	"io"
)

// ReaderSource is the default implementation of the CharSource interface.
// It decodes UTF-8 characters from an io.Reader one rune at a time.
type ReaderSource struct {
	reader *bufio.Reader
}

// NewReaderSource returns a CharSource that reads runes from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(r)}
}

// Next returns the next rune from the underlying reader. It returns io.EOF
// when the reader is exhausted; any other error indicates a problem reading
// from the underlying stream.
func (s *ReaderSource) Next() (rune, error) {
	c, _, err := s.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	return c, nil
}
