package bytekiller

import "encoding/binary"

// xorWords returns the XOR of the little-endian 32-bit words in body.
// len(body) must be a multiple of WordSize.
func xorWords(body []byte) uint32 {
	var s uint32
	for i := 0; i+WordSize <= len(body); i += WordSize {
		s ^= binary.LittleEndian.Uint32(body[i:])
	}

	return s
}
