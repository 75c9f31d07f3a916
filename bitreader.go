package bytekiller

import (
	"encoding/binary"
	"fmt"
)

// bitReader consumes a stream from its last word toward the header.
//
// window holds the unread bits of the current word above a single set
// sentinel bit. The final word carries the encoder's end marker as its
// sentinel; every reloaded word gets bit 31 set after its first bit is taken.
// A window of zero therefore always means "word exhausted", even when the
// remaining data bits are all zero.
type bitReader struct {
	src    []byte
	pos    int // offset of the word in window; moves backward
	floor  int // lowest offset a word may be loaded from
	window uint32
}

// newBitReader preloads the word at src[end-WordSize:].
func newBitReader(src []byte, end int) *bitReader {
	pos := end - WordSize

	return &bitReader{
		src:    src,
		pos:    pos,
		floor:  HeaderSize,
		window: binary.LittleEndian.Uint32(src[pos:]),
	}
}

// nextBit returns the next bit of the stream.
func (r *bitReader) nextBit() (uint32, error) {
	bit := r.window & 1
	r.window >>= 1
	if r.window != 0 {
		return bit, nil
	}

	if r.pos-WordSize < r.floor {
		return 0, fmt.Errorf("%w: bit read before body start at offset %d", ErrBufferUnderflow, r.pos)
	}

	r.pos -= WordSize
	word := binary.LittleEndian.Uint32(r.src[r.pos:])
	bit = word & 1
	r.window = word>>1 | sentinelBit

	return bit, nil
}

// readBits reads an n-bit field, most significant bit first.
func (r *bitReader) readBits(n int) (uint32, error) {
	var v uint32
	for ; n > 0; n-- {
		bit, err := r.nextBit()
		if err != nil {
			return 0, err
		}

		v = v<<1 | bit
	}

	return v, nil
}

// drained reports whether every body word was consumed down to the sentinel.
func (r *bitReader) drained() bool {
	return r.pos == r.floor && r.window == 1
}
