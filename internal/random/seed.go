// Package random provides cryptographic seed generation helpers.
//
// Battles are replayed from their seed, so the seed itself comes from
// crypto/rand while the battle consumes a deterministic math/rand
// stream derived from it.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a math/rand generator seeded from crypto/rand along
// with the seed it was built from, so callers can log the seed and
// reproduce the run later.
func NewRand() (*rand.Rand, int64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}

	return rand.New(rand.NewSource(seed)), seed, nil
}
