// Package zipwire encodes the wire records of a store-only ZIP archive.
//
// All records are little-endian with the 16- and 32-bit fields of the
// classic (non-ZIP64) format. Encoders pack into caller-provided scratch
// space and never allocate.
package zipwire

// Record signatures.
const (
	LocalHeaderMagic    uint32 = 0x04034b50
	CentralHeaderMagic  uint32 = 0x02014b50
	EOCDMagic           uint32 = 0x06054b50
	DataDescriptorMagic uint32 = 0x08074b50
)

// Fixed record sizes in bytes, excluding trailing variable-length metadata.
const (
	LocalHeaderSize    = 30
	CentralHeaderSize  = 46
	EOCDSize           = 22
	DataDescriptorSize = 16
)

// ScratchSize is the smallest buffer every Put encoder fits in.
const ScratchSize = 64

const (
	// ExtractVersion is the ZIP version (2.0) required to read entries.
	// It doubles as the only version this producer emits.
	ExtractVersion uint16 = 0x14

	// MethodStore is the only compression method emitted: none.
	MethodStore uint16 = 0
)

// FlagDataDescriptor marks entries whose checksum and sizes were unknown
// when the local header was written and follow the content in a data
// descriptor record instead.
const FlagDataDescriptor uint16 = 1 << 3

// Extended-timestamp ("UT") extra field layout.
const (
	TimestampTag  uint16 = 0x5455
	TimestampSize        = 9 // tag, data length, flags byte, uint32 mtime
)
