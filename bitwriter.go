package bytekiller

import "encoding/binary"

// bitWriter packs codes into little-endian 32-bit words.
// Bits enter the accumulator at the bottom, so the last bit written ends up
// in bit 0 and is the first one the reverse reader sees.
type bitWriter struct {
	out      []byte // header placeholder followed by flushed words
	acc      uint32 // bits not yet flushed
	bitsFree int    // free bits left in acc
	checksum uint32 // XOR of every flushed word
}

// newBitWriter returns a writer whose buffer starts with room for the header.
// sizeHint is the source length; append grows the buffer geometrically past it.
func newBitWriter(sizeHint int) *bitWriter {
	out := make([]byte, HeaderSize, HeaderSize+sizeHint/4+WordSize)

	return &bitWriter{
		out:      out,
		bitsFree: 32,
	}
}

// writeBits emits the low count bits of value, least significant first.
func (w *bitWriter) writeBits(count int, value uint32) {
	for ; count > 0; count-- {
		w.acc = w.acc<<1 | value&1
		value >>= 1

		w.bitsFree--
		if w.bitsFree == 0 {
			w.flush()
		}
	}
}

// flush appends the accumulator as one word and resets it.
func (w *bitWriter) flush() {
	w.out = binary.LittleEndian.AppendUint32(w.out, w.acc)
	w.checksum ^= w.acc
	w.acc = 0
	w.bitsFree = 32
}

// finish marks the end of the stream above the last written bit and flushes
// the final, possibly partial, word. bitsFree is 1..32 here, so the sentinel
// lands in bit 0..31.
func (w *bitWriter) finish() {
	w.acc |= 1 << (32 - w.bitsFree)
	w.flush()
}

// len returns the number of bytes written so far, header included.
func (w *bitWriter) len() int {
	return len(w.out)
}
