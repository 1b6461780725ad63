/*
Package markov implements a fixed-order, word-level Markov chain text
generator trained from a plain-text corpus held entirely in memory.

Training scans the corpus with a sliding window of `order` tokens, recording
which phrases start sentences and which (phrase, word) pairs follow each
phrase. Generation performs a random walk over the recorded transitions,
driven by an injected RandomSource, which makes output a replayable function
of the supplied value sequence.

Models are immutable once built; concurrent Generate calls are safe as long
as no rebuild swaps the model out underneath them.
*/
package markov
