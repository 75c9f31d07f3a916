package bytekiller

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rawStream wraps hand-written fields in a header claiming outLen decoded bytes.
func rawStream(outLen int, fields []field) []byte {
	w := newBitWriter(0)
	for _, f := range fields {
		w.writeBits(f.bits, f.value)
	}
	w.finish()

	Header{
		UncompressedSize: uint32(outLen),
		CompressedSize:   uint32(len(w.out)),
		Checksum:         w.checksum,
	}.Put(w.out)

	return w.out
}

func mustCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := Compress(data, nil)
	require.NoError(t, err)
	return enc
}

func TestDecompress_HandWrittenCodes(t *testing.T) {
	// Encoder order: a class 0 match for positions 0..1, then the literals
	// for 2..3 and their Dump. The decoder reads them in reverse.
	enc := rawStream(4, []field{
		{8, 2}, {2, 1},
		{8, 'c'}, {8, 'd'}, {5, 1},
	})

	dec, err := Decompress(enc, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("cdcd"), dec)
}

func TestDecompress_LongLiteralAndLongMatchCodes(t *testing.T) {
	lit := uniquePairs(20)
	fields := []field{{12, 20}, {8, 19}, {3, 6}} // copy 20 bytes from 20 ahead
	for _, b := range lit {
		fields = append(fields, field{8, uint32(b)})
	}
	fields = append(fields, field{11, longDumpPrefix | uint32(len(lit)-longDumpMin)})

	dec, err := Decompress(rawStream(40, fields), nil)
	require.NoError(t, err)
	require.Equal(t, append(append([]byte{}, lit...), lit...), dec)
}

func TestDecompress_InvalidHeader(t *testing.T) {
	enc := mustCompress(t, []byte("hello world"))

	cases := map[string][]byte{
		"short":      enc[:HeaderSize-1],
		"no-body":    enc[:HeaderSize],
		"truncated":  enc[:len(enc)-1],
		"trailing":   append(append([]byte{}, enc...), 0, 0, 0, 0),
		"misaligned": withSize(enc, uint32(len(enc)-2)),
		"tiny-size":  withSize(enc, HeaderSize),
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decompress(src, nil)
			require.ErrorIs(t, err, ErrInvalidHeader)
		})
	}
}

func withSize(enc []byte, size uint32) []byte {
	out := append([]byte{}, enc...)
	binary.LittleEndian.PutUint32(out[4:], size)
	return out
}

func TestDecompress_ChecksumMismatch(t *testing.T) {
	raw := []byte("checksum protected payload")
	enc := mustCompress(t, raw)
	enc[8] ^= 0xFF

	_, err := Decompress(enc, nil)
	require.ErrorIs(t, err, ErrChecksumMismatch)

	dec, err := Decompress(enc, LenientDecompressOptions())
	require.NoError(t, err)
	require.Equal(t, raw, dec)
}

func TestDecompress_CorruptBodyIsDetected(t *testing.T) {
	enc := mustCompress(t, bytes.Repeat([]byte("corrupt me "), 50))
	enc[HeaderSize+3] ^= 0x10

	_, err := Decompress(enc, nil)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecompress_SizeFieldTooLarge(t *testing.T) {
	raw := []byte("hello world")
	enc := mustCompress(t, raw)
	binary.LittleEndian.PutUint32(enc[0:], uint32(len(raw)+1))

	_, err := Decompress(enc, nil)
	require.ErrorIs(t, err, ErrBufferUnderflow)
}

func TestDecompress_SizeFieldBeyondBodyCapacity(t *testing.T) {
	enc := mustCompress(t, nil)
	binary.LittleEndian.PutUint32(enc[0:], 1<<30)

	_, err := Decompress(enc, nil)
	require.ErrorIs(t, err, ErrInvalidHeader)

	// The largest size a 16-byte stream can describe still reaches the decoder.
	binary.LittleEndian.PutUint32(enc[0:], uint32(maxDecodedSize(16)))
	_, err = Decompress(enc, nil)
	require.ErrorIs(t, err, ErrBufferUnderflow)

	binary.LittleEndian.PutUint32(enc[0:], uint32(maxDecodedSize(16))+1)
	_, err = Decompress(enc, nil)
	require.ErrorIs(t, err, ErrInvalidHeader)

	binary.LittleEndian.PutUint32(enc[0:], 0xFFFFFFFF)
	_, err = Decompress(enc, &DecompressOptions{MaxOutLen: 1 << 20})
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestMaxDecodedSizeCoversLongMatches(t *testing.T) {
	raw := make([]byte, 100_000)
	enc := mustCompress(t, raw)

	h, err := ParseHeader(enc)
	require.NoError(t, err)
	require.LessOrEqual(t, uint64(len(raw)), maxDecodedSize(h.CompressedSize))

	dec, err := Decompress(enc, nil)
	require.NoError(t, err)
	require.Equal(t, raw, dec)
}

func TestDecompress_SizeFieldTooSmall(t *testing.T) {
	raw := []byte("hello world")
	enc := mustCompress(t, raw)
	binary.LittleEndian.PutUint32(enc[0:], uint32(len(raw)-1))

	_, err := Decompress(enc, nil)
	require.ErrorIs(t, err, ErrBufferUnderflow)
}

func TestDecompress_CopyOutOfRange(t *testing.T) {
	cases := map[string][]field{
		"beyond-output": {{8, 5}, {2, 1}},
		"zero-offset":   {{8, 0}, {2, 1}},
		"too-long":      {{12, 1}, {8, 9}, {3, 6}},
	}

	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decompress(rawStream(2, fields), nil)
			require.ErrorIs(t, err, ErrBufferUnderflow)
		})
	}
}

func TestDecompress_TooManyLiterals(t *testing.T) {
	// Dump says 3 literals but only 2 output bytes exist.
	_, err := Decompress(rawStream(2, []field{{8, 1}, {8, 2}, {8, 3}, {5, 2}}), nil)
	require.ErrorIs(t, err, ErrBufferUnderflow)
}

func TestDecompress_UnconsumedBody(t *testing.T) {
	// A word of unread data sits in front of a valid one-literal stream.
	enc := rawStream(1, []field{{32, 0xDEADBEEF}, {8, 'A'}, {5, 0}})

	_, err := Decompress(enc, nil)
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecompress_MissingEndMarker(t *testing.T) {
	enc := rawStream(0, nil)
	binary.LittleEndian.PutUint32(enc[HeaderSize:], 0)

	_, err := Decompress(enc, LenientDecompressOptions())
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecompress_MaxOutLen(t *testing.T) {
	raw := bytes.Repeat([]byte("z"), 100)
	enc := mustCompress(t, raw)

	_, err := Decompress(enc, &DecompressOptions{VerifyChecksum: true, MaxOutLen: 99})
	require.ErrorIs(t, err, ErrOutputTooLarge)

	dec, err := Decompress(enc, &DecompressOptions{VerifyChecksum: true, MaxOutLen: 100})
	require.NoError(t, err)
	require.Equal(t, raw, dec)
}

func TestDecompressBlock_AllowsTrailingBytes(t *testing.T) {
	raw := bytes.Repeat([]byte("block-contract"), 64)
	enc := mustCompress(t, raw)

	payload := append(append([]byte{}, enc...), []byte("tail")...)
	dec, consumed, err := DecompressBlock(payload, nil)
	require.NoError(t, err)
	require.Equal(t, len(enc), consumed)
	require.Equal(t, raw, dec)
	require.Equal(t, "tail", string(payload[consumed:]))
}

func TestDecompressBlock_BackToBack(t *testing.T) {
	a := []byte("first stream, first stream")
	b := bytes.Repeat([]byte{1, 2, 3}, 300)
	buf := append(mustCompress(t, a), mustCompress(t, b)...)

	got, n, err := DecompressBlock(buf, nil)
	require.NoError(t, err)
	require.Equal(t, a, got)

	got, _, err = DecompressBlock(buf[n:], nil)
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestDecompressFromReader(t *testing.T) {
	raw := bytes.Repeat([]byte("xyz"), 200)
	enc := mustCompress(t, raw)

	dec, err := DecompressFromReader(bytes.NewReader(enc), nil)
	require.NoError(t, err)
	require.Equal(t, raw, dec)

	opts := DefaultDecompressOptions()
	opts.MaxInputSize = len(enc) - 1
	_, err = DecompressFromReader(bytes.NewReader(enc), opts)
	require.ErrorIs(t, err, ErrInputTooLarge)

	opts.MaxInputSize = len(enc)
	_, err = DecompressFromReader(bytes.NewReader(enc), opts)
	require.NoError(t, err)

	_, err = DecompressFromReader(nil, nil)
	require.ErrorIs(t, err, ErrNilReader)

	_, err = DecompressFromReader(strings.NewReader("short"), nil)
	require.ErrorIs(t, err, ErrInvalidHeader)
}
