package bytekiller

import (
	"encoding/binary"
	"fmt"
)

// Header is the 12-byte little-endian prefix of every stream.
type Header struct {
	UncompressedSize uint32 // Length of the decoded data.
	CompressedSize   uint32 // Length of the whole stream, header included.
	Checksum         uint32 // XOR of all body words.
}

// ParseHeader reads the header at the start of src and checks it describes
// a stream of whole words that fits in src.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", ErrInvalidHeader, HeaderSize, len(src))
	}

	h := Header{
		UncompressedSize: binary.LittleEndian.Uint32(src[0:]),
		CompressedSize:   binary.LittleEndian.Uint32(src[4:]),
		Checksum:         binary.LittleEndian.Uint32(src[8:]),
	}

	size := uint64(h.CompressedSize)
	switch {
	case size < HeaderSize+WordSize:
		return Header{}, fmt.Errorf("%w: compressed size %d has no body word", ErrInvalidHeader, size)
	case (size-HeaderSize)%WordSize != 0:
		return Header{}, fmt.Errorf("%w: compressed size %d is not word aligned", ErrInvalidHeader, size)
	case size > uint64(len(src)):
		return Header{}, fmt.Errorf("%w: compressed size %d exceeds input length %d", ErrInvalidHeader, size, len(src))
	}

	return h, nil
}

// Put writes h into the first HeaderSize bytes of dst.
func (h Header) Put(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:], h.UncompressedSize)
	binary.LittleEndian.PutUint32(dst[4:], h.CompressedSize)
	binary.LittleEndian.PutUint32(dst[8:], h.Checksum)
}
