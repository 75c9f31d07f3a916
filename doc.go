// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/bytekiller

/*
Package bytekiller implements the ByteKiller cruncher format, little-endian PSX variant.

Format: 12-byte header [uncompressed size, compressed size (header included), checksum],
then a body of little-endian 32-bit words. The checksum is the XOR of all body words.
The body is a bitstream read from the last word toward the header; the decoder
fills its output from the end back to the start, so back-references point
forward (toward data that was already decoded).

Codes, as seen by the decoder (bits read most significant first):

	0 0 nnn                 literals, n+1 bytes follow (8 bits each)
	0 1 oooooooo            copy 2 bytes, 8-bit offset
	1 00 ooooooooo          copy 3 bytes, 9-bit offset
	1 01 oooooooooo         copy 4 bytes, 10-bit offset
	1 10 llllllll o{12}     copy l+1 bytes (5..256), 12-bit offset
	1 11 nnnnnnnn           literals, n+9 bytes follow

The encoder searches 2048 bytes ahead by default (CompressOptions.ScanWidth).

# Examples

Round-trip compress and decompress:

	enc, err := bytekiller.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := bytekiller.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Decode a stream followed by other data:

	out, consumed, err := bytekiller.DecompressBlock(buf, nil)
	if err != nil {
		return err
	}
	buf = buf[consumed:]

Decode from an io.Reader with an input cap and a lenient checksum:

	opts := bytekiller.LenientDecompressOptions()
	opts.MaxInputSize = 2 << 20
	out, err := bytekiller.DecompressFromReader(r, opts)

Compress and prove the stream decodes back to the input:

	enc, err := bytekiller.Verify(data, nil)
	if errors.Is(err, bytekiller.ErrByteMismatch) {
		// ...
	}
*/
package bytekiller
