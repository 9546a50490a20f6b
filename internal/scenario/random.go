package scenario

import (
	"math/rand/v2"

	"audiocheck/internal/fixture"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Format is an audio format path segment.
type Format string

// ValidFormats are the formats the service converts to.
var ValidFormats = []Format{"mp3", "m4a", "wav", "flac", "opus"}

// InvalidFormat is never accepted by the service.
const InvalidFormat Format = "xyz"

// NewRand returns a PCG source seeded with seed, or randomly when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomString returns n characters drawn uniformly from [a-zA-Z0-9].
func RandomString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rng.IntN(len(alphanumeric))]
	}
	return string(b)
}

// RandomFormat picks one of ValidFormats uniformly.
func RandomFormat(rng *rand.Rand) Format {
	return ValidFormats[rng.IntN(len(ValidFormats))]
}

// RandomFixture picks one fixture uniformly. fixtures must not be empty.
func RandomFixture(rng *rand.Rand, fixtures []fixture.AudioFixture) fixture.AudioFixture {
	return fixtures[rng.IntN(len(fixtures))]
}
