package bytekiller

import (
	"encoding/binary"
	"fmt"
	"math"
)

// decodeState selects the next action of the control-bit dispatcher.
type decodeState int

const (
	stateControl decodeState = iota // read the first control bit
	stateShort                      // 0x: short match or 1..8 literals
	stateLong                       // 1xx: longer matches or 9..264 literals
)

// decoder holds the state of one decode call. Output is written back to front.
type decoder struct {
	r   *bitReader
	dst []byte
	pos int // next byte to write is dst[pos-1]
}

// Decompress decodes a whole ByteKiller stream. The compressed size in the
// header must equal len(src). Options nil means DefaultDecompressOptions().
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	if int(h.CompressedSize) != len(src) {
		return nil, fmt.Errorf("%w: compressed size %d, input length %d", ErrInvalidHeader, h.CompressedSize, len(src))
	}

	return decodeStream(src, h, opts)
}

// DecompressBlock decodes the stream at the beginning of src and returns the
// decoded bytes and the number of bytes the stream occupies.
// Unlike Decompress, this function ignores trailing bytes after the stream.
func DecompressBlock(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return nil, 0, err
	}

	out, err := decodeStream(src, h, opts)
	if err != nil {
		return nil, 0, err
	}

	return out, int(h.CompressedSize), nil
}

// decodeStream validates the body described by h and runs the dispatcher over it.
func decodeStream(src []byte, h Header, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	size := uint64(h.UncompressedSize)
	if limit := maxDecodedSize(h.CompressedSize); size > limit {
		return nil, fmt.Errorf("%w: uncompressed size %d exceeds %d bytes a %d-byte stream can encode",
			ErrInvalidHeader, size, limit, h.CompressedSize)
	}

	if size > math.MaxInt || (opts.MaxOutLen > 0 && size > uint64(opts.MaxOutLen)) {
		return nil, fmt.Errorf("%w: %d > %d", ErrOutputTooLarge, size, opts.MaxOutLen)
	}

	outLen := int(size)
	end := int(h.CompressedSize)
	if opts.VerifyChecksum {
		if sum := xorWords(src[HeaderSize:end]); sum != h.Checksum {
			return nil, fmt.Errorf("%w: got=0x%08x expected=0x%08x", ErrChecksumMismatch, sum, h.Checksum)
		}
	}

	if binary.LittleEndian.Uint32(src[end-WordSize:]) == 0 {
		return nil, fmt.Errorf("%w: last body word has no end marker", ErrInvalidHeader)
	}

	d := &decoder{
		r:   newBitReader(src, end),
		dst: make([]byte, outLen),
		pos: outLen,
	}
	if err := d.run(); err != nil {
		return nil, err
	}

	if !d.r.drained() {
		return nil, fmt.Errorf("%w: body not fully consumed (stopped at offset %d)", ErrInvalidHeader, d.r.pos)
	}

	return d.dst, nil
}

// maxDecodedSize bounds the output a stream of compressedSize bytes can
// describe: every code of the body at best is a 256-byte long match.
func maxDecodedSize(compressedSize uint32) uint64 {
	bodyBits := uint64(compressedSize-HeaderSize) * 8
	return (bodyBits/densestCodeBits + 1) * MaxMatch
}

// run dispatches control codes until the output is filled.
//
//	0 1        short match: 8-bit offset, length 2
//	0 0        literals: 3-bit count + 1
//	1 00/01    match: (9 or 10)-bit offset, length 3 or 4
//	1 10       long match: 8-bit length - 1, 12-bit offset
//	1 11       literals: 8-bit count + 9
func (d *decoder) run() error {
	state := stateControl
	for d.pos > 0 {
		switch state {
		case stateControl:
			bit, err := d.r.nextBit()
			if err != nil {
				return err
			}

			if bit == 0 {
				state = stateShort
			} else {
				state = stateLong
			}

		case stateShort:
			bit, err := d.r.nextBit()
			if err != nil {
				return err
			}

			if bit == 1 {
				err = d.copyMatch(8, 2)
			} else {
				err = d.literals(3, 1)
			}
			if err != nil {
				return err
			}

			state = stateControl

		case stateLong:
			v, err := d.r.readBits(2)
			if err != nil {
				return err
			}

			switch v {
			case 0, 1:
				err = d.copyMatch(int(v)+9, int(v)+3)
			case 2:
				var n uint32
				n, err = d.r.readBits(8)
				if err == nil {
					err = d.copyMatch(12, int(n)+1)
				}
			default:
				err = d.literals(8, 9)
			}
			if err != nil {
				return err
			}

			state = stateControl
		}
	}

	return nil
}

// copyMatch reads an offsetBits-wide offset and copies length bytes from
// offset bytes further along the output. Source and destination may
// overlap; copying back to front keeps each source byte valid.
func (d *decoder) copyMatch(offsetBits, length int) error {
	v, err := d.r.readBits(offsetBits)
	if err != nil {
		return err
	}

	offset := int(v)
	if offset == 0 || length > d.pos || d.pos-1+offset >= len(d.dst) {
		return fmt.Errorf("%w: copy of %d bytes from offset %d at output position %d (size %d)",
			ErrBufferUnderflow, length, offset, d.pos, len(d.dst))
	}

	for range length {
		d.pos--
		d.dst[d.pos] = d.dst[d.pos+offset]
	}

	return nil
}

// literals reads a countBits-wide count, adds base, and stores that many raw
// bytes back to front.
func (d *decoder) literals(countBits, base int) error {
	v, err := d.r.readBits(countBits)
	if err != nil {
		return err
	}

	n := int(v) + base
	if n > d.pos {
		return fmt.Errorf("%w: %d literals at output position %d", ErrBufferUnderflow, n, d.pos)
	}

	for range n {
		b, err := d.r.readBits(8)
		if err != nil {
			return err
		}

		d.pos--
		d.dst[d.pos] = byte(b)
	}

	return nil
}
