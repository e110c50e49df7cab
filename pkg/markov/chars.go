package markov

// CharSource is an interface for a stateful supplier of corpus characters.
// The model consumes a source strictly left-to-right, exactly once; sources
// are not expected to be restartable.
type CharSource interface {
	// Next returns the next character from the source. It returns io.EOF as
	// the error when the source is fully consumed.
	Next() (rune, error)
}
