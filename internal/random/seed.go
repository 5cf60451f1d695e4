// Package random provides seed generation for the daily task selector.
//
// Seeds come from crypto/rand so each process draws an unpredictable daily
// selection, while tests can still pin a fixed seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// ResolveSeed returns configured when non-zero, otherwise a fresh seed.
func ResolveSeed(configured uint64) (uint64, error) {
	if configured != 0 {
		return configured, nil
	}
	return NewSeed()
}
