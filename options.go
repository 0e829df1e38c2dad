package piececube

import "math/rand/v2"

// DefaultScrambleLength is the number of random turns applied by Scramble.
const DefaultScrambleLength = 25

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	rng            *rand.Rand
	scrambleLength int
}

func defaultConfig() *config {
	return &config{
		rng:            nil,
		scrambleLength: DefaultScrambleLength,
	}
}

// WithRand sets the random source used by Scramble.
// When unset, the global math/rand/v2 source is used.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed is shorthand for WithRand with a PCG source seeded from seed.
// Two cubes built with the same seed scramble identically.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithScrambleLength sets how many random turns Scramble applies.
// Values below 1 are ignored.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}
