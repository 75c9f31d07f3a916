// Package psxexe moves the load parameters of a PSX-EXE between its 2048-byte
// header and the 16-byte mini header that precedes a crunched payload.
package psxexe

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Layout of the full executable header and the mini header.
const (
	HeaderSize     = 0x800 // One CD sector.
	MiniHeaderSize = 0x10

	offJumpAddr  = 0x10
	offWriteAddr = 0x18
	offFileSize  = 0x1C
	offStackAddr = 0x30
)

// ErrShortInput is returned when the input cannot hold a full executable header.
var ErrShortInput = errors.New("input shorter than psx-exe header")

// Header holds the four fields carried over into the mini header.
// They are copied verbatim and never interpreted.
type Header struct {
	JumpAddr  uint32
	WriteAddr uint32
	FileSize  uint32
	StackAddr uint32
}

// Strip reads the load parameters from data and returns them with the payload
// that follows the header. The payload aliases data.
func Strip(data []byte) (Header, []byte, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortInput, len(data), HeaderSize)
	}

	h := Header{
		JumpAddr:  binary.LittleEndian.Uint32(data[offJumpAddr:]),
		WriteAddr: binary.LittleEndian.Uint32(data[offWriteAddr:]),
		FileSize:  binary.LittleEndian.Uint32(data[offFileSize:]),
		StackAddr: binary.LittleEndian.Uint32(data[offStackAddr:]),
	}

	return h, data[HeaderSize:], nil
}

// Prepend returns a new buffer holding the mini header
// (jump, file size, write, stack) followed by payload.
func (h Header) Prepend(payload []byte) []byte {
	out := make([]byte, MiniHeaderSize, MiniHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[0x0:], h.JumpAddr)
	binary.LittleEndian.PutUint32(out[0x4:], h.FileSize)
	binary.LittleEndian.PutUint32(out[0x8:], h.WriteAddr)
	binary.LittleEndian.PutUint32(out[0xC:], h.StackAddr)

	return append(out, payload...)
}

// ParseMini reads a mini header from the start of data and returns it with the rest of data.
func ParseMini(data []byte) (Header, []byte, error) {
	if len(data) < MiniHeaderSize {
		return Header{}, nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortInput, len(data), MiniHeaderSize)
	}

	h := Header{
		JumpAddr:  binary.LittleEndian.Uint32(data[0x0:]),
		FileSize:  binary.LittleEndian.Uint32(data[0x4:]),
		WriteAddr: binary.LittleEndian.Uint32(data[0x8:]),
		StackAddr: binary.LittleEndian.Uint32(data[0xC:]),
	}

	return h, data[MiniHeaderSize:], nil
}
