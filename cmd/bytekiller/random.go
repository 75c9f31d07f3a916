package main

import (
	"math/rand/v2"
	"time"
)

// randomSize is the length of the generated 'random' input.
const randomSize = 1000

func newRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano()) // #nosec G115
	return rand.New(rand.NewPCG(seed, seed>>32))
}

// randomData returns n pseudo-random bytes with runs of repeated values mixed in,
// so both literal and match codes get exercised.
func randomData(r *rand.Rand, n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		b := byte(r.UintN(256))
		out = append(out, b)

		// Extend the run while the next draw is below 200 (about 78% each time).
		for len(out) < n && r.UintN(256) < 200 {
			out = append(out, b)
		}
	}

	return out
}
