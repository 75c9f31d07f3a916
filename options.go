package bytekiller

// CompressOptions configures compression.
type CompressOptions struct {
	// ScanWidth is the match finder look-ahead in bytes, clamped to MinScanWidth..MaxScanWidth.
	// Zero means DefaultScanWidth. Streams decode the same whatever width produced them.
	ScanWidth int
}

// DefaultCompressOptions returns options matching the PSX tools (scan width 2048).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{ScanWidth: DefaultScanWidth}
}

// scanWidth returns the effective look-ahead.
func (o *CompressOptions) scanWidth() int {
	if o == nil || o.ScanWidth == 0 {
		return DefaultScanWidth
	}

	return min(max(o.ScanWidth, MinScanWidth), MaxScanWidth)
}

// DecompressOptions configures Decompress and DecompressFromReader behavior.
type DecompressOptions struct {
	// VerifyChecksum: if true, the XOR of body words must match the header checksum.
	VerifyChecksum bool
	// MaxOutLen limits the uncompressed size a header may request (0 = no limit).
	MaxOutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options for default behavior: strict checksum, no size limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{VerifyChecksum: true}
}

// LenientDecompressOptions returns options that skip checksum verification,
// for dumps whose header checksum was patched or never filled in.
func LenientDecompressOptions() *DecompressOptions {
	return &DecompressOptions{VerifyChecksum: false}
}
