/*
Package markov provides a fixed-order, character-level Markov chain model
for Go, built for training on a text corpus and generating new pseudo-random
text with similar local structure.

A Model maps every window of N consecutive characters observed during
training to the frequency distribution of the characters that followed it.
Generation walks that mapping with a rolling window, drawing each next
character by inverse-CDF sampling over the window's distribution. The random
source is owned by the model instance and can be seeded for reproducible
output, so independent models may be used from separate goroutines without
interference.
*/
package markov
