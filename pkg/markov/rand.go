package markov

import "math/rand/v2"

// RandomSource is the randomness capability the generator consumes: produce
// the next unsigned 32-bit value. Injecting it decouples generation from any
// concrete random number algorithm; a fixed value sequence replays a fixed
// sentence.
type RandomSource interface {
	Next() uint32
}

type randSource struct{}

func (randSource) Next() uint32 {
	return rand.Uint32()
}

// NewRandSource returns a RandomSource backed by the shared math/rand/v2
// generator.
func NewRandSource() RandomSource {
	return randSource{}
}

type seededSource struct {
	rng *rand.Rand
}

func (s *seededSource) Next() uint32 {
	return s.rng.Uint32()
}

// NewSeededSource returns a replayable RandomSource backed by a PCG
// generator seeded with the two given values.
func NewSeededSource(seed1, seed2 uint64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}
