package domain

import (
	"math/rand/v2"
	"strings"
)

const IDLength = 10

// IDGenerator produces message identifiers.
type IDGenerator interface {
	Generate() string
}

// RandomIDGenerator draws IDLength independent decimal digits.
// Identifiers are not guaranteed unique, use Message.Key for identity.
type RandomIDGenerator struct {
	rnd *rand.Rand
}

// NewRandomIDGenerator uses the runtime's shared source.
func NewRandomIDGenerator() RandomIDGenerator {
	return RandomIDGenerator{}
}

// NewSeededIDGenerator is deterministic for a given seed.
// The returned generator is not safe for concurrent use, MessageFactory serializes access.
func NewSeededIDGenerator(seed uint64) RandomIDGenerator {
	return RandomIDGenerator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (g RandomIDGenerator) Generate() string {
	var sb strings.Builder
	sb.Grow(IDLength)
	for range IDLength {
		sb.WriteByte(byte('0' + g.digit()))
	}
	return sb.String()
}

func (g RandomIDGenerator) digit() int {
	if g.rnd == nil {
		return rand.IntN(10)
	}
	return g.rnd.IntN(10)
}

// IsValidID reports whether id is exactly IDLength decimal digits.
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}
