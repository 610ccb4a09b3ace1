package random

import (
	"crypto/rand"
	"math/big"
)

// Alphabet is the set of letters a board cell can hold
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Random is the source of randomness for board generation.
// Tests swap in mocks.MockRandom to get a fixed board.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniformly distributed int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// Letter draws a single letter from Alphabet
func Letter(r Random) rune {
	return rune(Alphabet[r.Intn(len(Alphabet))])
}
