package bytekiller

import (
	"math/rand/v2"
)

// uniquePairs returns n bytes in which no two adjacent-byte pairs repeat and
// the values 0x00 and 0xFF never occur. Such data never yields a match.
func uniquePairs(n int) []byte {
	out := make([]byte, 0, n)
	for a := 1; a < 0xFE && len(out) < n; a++ {
		for b := a + 1; b <= 0xFE && len(out) < n; b++ {
			out = append(out, byte(a), byte(b))
		}
	}

	return out[:n]
}

// repeatAt builds marker, filler, marker, 0x01 so that the second marker sits
// exactly offset bytes after the first.
func repeatAt(marker []byte, offset int) []byte {
	src := append([]byte{}, marker...)
	src = append(src, uniquePairs(offset-len(marker))...)
	src = append(src, marker...)

	return append(src, 0x01)
}

// runBiased mimics the CLI 'random' input with a fixed seed.
func runBiased(seed uint64, n int) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]byte, 0, n)
	for len(out) < n {
		b := byte(r.UintN(256))
		out = append(out, b)
		for len(out) < n && r.UintN(256) < 200 {
			out = append(out, b)
		}
	}

	return out
}

// noise returns n uniformly random bytes with a fixed seed.
func noise(seed uint64, n int) []byte {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.UintN(256))
	}

	return out
}
