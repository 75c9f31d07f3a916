package bytekiller

// ByteKiller format constants.
const (
	HeaderSize       = 12      // Uncompressed size, compressed size, checksum.
	WordSize         = 4       // Body is made of little-endian 32-bit words.
	DefaultScanWidth = 2048    // Look-ahead window used by the PSX tools.
	MinScanWidth     = 8       // Smallest accepted scan width.
	MaxScanWidth     = 4096    // Largest accepted scan width.
	MaxMatch         = 0x100   // Maximum back-reference length (class 3).
	MaxLiteralRun    = 0x108   // Literal count that forces a Dump.
	longDumpMin      = 9       // Runs of 9 and more use the 11-bit Dump code.
	longDumpPrefix   = 0x700   // Prefix of the 11-bit Dump code.
	sentinelBit      = 1 << 31 // Marks a freshly loaded reader word.
	densestCodeBits  = 23      // Long match: 12-bit offset, 8-bit length, 3-bit command.
)

// Match classes. Classes 0..2 are fixed lengths 2..4; class 3 carries a length byte.
const (
	classLen2 = iota
	classLen3
	classLen4
	classLong
)

// matchClass describes how one class of back-references is encoded.
type matchClass struct {
	maxOffset  int    // offsets must be strictly below this bound
	offsetBits int    // width of the offset field
	cmdBits    int    // width of the command code
	cmdWord    uint32 // command code, read MSB first by the decoder
}

// matchClasses is indexed by class.
var matchClasses = [4]matchClass{
	{maxOffset: 0x100, offsetBits: 8, cmdBits: 2, cmdWord: 1},
	{maxOffset: 0x200, offsetBits: 9, cmdBits: 3, cmdWord: 4},
	{maxOffset: 0x400, offsetBits: 10, cmdBits: 3, cmdWord: 5},
	{maxOffset: 0x1000, offsetBits: 12, cmdBits: 3, cmdWord: 6},
}
