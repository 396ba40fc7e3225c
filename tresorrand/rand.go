// Package tresorrand provides the random-bytes sources a tresor.Store's
// rand parameter expects: io.Reader is already the one-method interface
// that parameter needs, so System() just hands back crypto/rand.Reader,
// and Fixed() gives tests a deterministic source so a seal's output is
// reproducible.
package tresorrand

import (
	crand "crypto/rand"
	"fmt"
	"io"
)

// System returns the process-wide cryptographically secure random source.
// Use this for every production Store.
func System() io.Reader {
	return crand.Reader
}

// Bytes generates n cryptographically secure random bytes. A convenience
// for callers building their own Entry ids outside of tresor.NewEntryID.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(crand.Reader, b); err != nil {
		return nil, fmt.Errorf("tresorrand: generate bytes: %w", err)
	}
	return b, nil
}

// Fill fills b with cryptographically secure random bytes.
func Fill(b []byte) error {
	if _, err := io.ReadFull(crand.Reader, b); err != nil {
		return fmt.Errorf("tresorrand: fill: %w", err)
	}
	return nil
}

// Fixed returns a deterministic io.Reader that repeats seed indefinitely.
// Two Stores sealed with a Fixed source built from the same seed (and the
// same FixedClock) produce byte-identical blobs, which is what makes
// Seal's determinism law testable without a real RNG.
func Fixed(seed []byte) io.Reader {
	if len(seed) == 0 {
		seed = []byte{0}
	}
	return &fixedReader{seed: seed}
}

type fixedReader struct {
	seed []byte
	pos  int
}

func (f *fixedReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = f.seed[f.pos]
		f.pos = (f.pos + 1) % len(f.seed)
	}
	return len(p), nil
}
