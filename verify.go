package bytekiller

import "fmt"

// Verify compresses src, decodes the result and compares it with src.
// It returns the compressed stream so callers can keep it on success.
func Verify(src []byte, copts *CompressOptions) ([]byte, error) {
	enc, err := Compress(src, copts)
	if err != nil {
		return nil, err
	}

	dec, err := Decompress(enc, DefaultDecompressOptions())
	if err != nil {
		return nil, err
	}

	if err := Compare(src, dec); err != nil {
		return nil, err
	}

	return enc, nil
}

// Compare reports the first difference between want and got.
func Compare(want, got []byte) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: original %d bytes, decoded %d bytes", ErrSizeMismatch, len(want), len(got))
	}

	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("%w: offset 0x%08X expected 0x%02X got 0x%02X", ErrByteMismatch, i, want[i], got[i])
		}
	}

	return nil
}
