package bytekiller

// encoder holds the state of one Compress call.
type encoder struct {
	w       *bitWriter
	src     []byte
	width   int
	pending int // literals written since the last Dump
}

// Compress compresses src into a ByteKiller stream. Options nil means DefaultCompressOptions().
// Any input, including an empty one, can be encoded; the error is always nil.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	e := &encoder{
		w:     newBitWriter(len(src)),
		src:   src,
		width: opts.scanWidth(),
	}

	for p := 0; p < len(src); {
		m := findMatch(src, p, e.width)
		if m.length > 1 {
			e.emitMatch(m)
			p += m.length
			continue
		}

		e.emitLiteral(src[p])
		p++
	}

	e.dump()
	e.w.finish()

	out := e.w.out
	Header{
		UncompressedSize: uint32(len(src)), // #nosec G115 -- format stores 32-bit sizes
		CompressedSize:   uint32(len(out)), // #nosec G115
		Checksum:         e.w.checksum,
	}.Put(out)

	return out[:len(out):len(out)], nil
}

// emitMatch writes a back-reference: offset, length byte for long matches, then the command.
// Pending literals get their count marker first.
func (e *encoder) emitMatch(m match) {
	e.dump()

	c := matchClasses[m.class]
	e.w.writeBits(c.offsetBits, uint32(m.offset)) // #nosec G115 -- offset < 0x1000
	if m.class == classLong {
		e.w.writeBits(8, uint32(m.length-1)) // #nosec G115 -- length <= MaxMatch
	}
	e.w.writeBits(c.cmdBits, c.cmdWord)
}

// emitLiteral writes one raw byte and counts it toward the next Dump.
func (e *encoder) emitLiteral(b byte) {
	e.w.writeBits(8, uint32(b))

	e.pending++
	if e.pending >= MaxLiteralRun {
		e.dump()
	}
}

// dump writes the count marker for the pending literals. The decoder reads
// it before the bytes it counts: 5 bits for 1..8 literals, 11 bits for 9..264.
func (e *encoder) dump() {
	n := e.pending
	e.pending = 0

	switch {
	case n >= longDumpMin:
		e.w.writeBits(11, uint32(longDumpPrefix|(n-longDumpMin))) // #nosec G115
	case n >= 1:
		e.w.writeBits(5, uint32(n-1)) // #nosec G115
	}
}
