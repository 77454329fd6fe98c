package zipwire

import (
	"encoding/binary"
	"time"

	"github.com/meigma/zipstore/internal/dostime"
)

// Entry is the bookkeeping record for one archive member. It is populated
// when the member's local header is written and consulted again when the
// central directory is emitted.
//
// Name, extra field, and comment bytes live in one contiguous blob: the
// local write (name+extra) and the central write (name+extra+comment) are
// slices of the same allocation.
type Entry struct {
	Flags        uint16
	CRC32        uint32
	Size         uint32 // stored and original are the same, content is never compressed
	HeaderOffset uint32
	DOSDate      uint16
	DOSTime      uint16

	nameLen    uint16
	extraLen   uint16
	commentLen uint16
	meta       []byte
}

// NewEntry builds the record and metadata blob for one member. The extra
// field always carries the extended timestamp, so mtime is encoded twice:
// clamped DOS words for the header fields and the raw Unix value truncated
// to 32 bits in the blob. Name and comment lengths must already fit in 16
// bits.
func NewEntry(name string, mtime time.Time, comment string) Entry {
	meta := make([]byte, len(name)+TimestampSize+len(comment))
	n := copy(meta, name)
	putTimestamp(meta[n:], mtime)
	copy(meta[n+TimestampSize:], comment)

	date, clock := dostime.FromTime(mtime)
	return Entry{
		DOSDate:    date,
		DOSTime:    clock,
		nameLen:    uint16(len(name)),
		extraLen:   TimestampSize,
		commentLen: uint16(len(comment)),
		meta:       meta,
	}
}

// putTimestamp packs the extended-timestamp extra field: tag, data length,
// a flags byte announcing the mtime word, and the mtime itself.
func putTimestamp(b []byte, mtime time.Time) {
	binary.LittleEndian.PutUint16(b[0:2], TimestampTag)
	binary.LittleEndian.PutUint16(b[2:4], 5) // flags byte + mtime word
	b[4] = 0x01                              // mtime present
	binary.LittleEndian.PutUint32(b[5:9], uint32(mtime.Unix()))
}

// LocalMeta returns the name and extra field bytes written after the local
// file header.
func (e *Entry) LocalMeta() []byte {
	return e.meta[:int(e.nameLen)+int(e.extraLen)]
}

// CentralMeta returns the name, extra field, and comment bytes written
// after the central directory header.
func (e *Entry) CentralMeta() []byte {
	return e.meta
}

// MetaLen returns the central metadata length: name + extra + comment.
func (e *Entry) MetaLen() int {
	return len(e.meta)
}

// PutLocalHeader packs the 30-byte local file header into b and returns the
// packed slice. Entries flagged for a data descriptor zero the checksum and
// size fields here; the real values follow the content.
func (e *Entry) PutLocalHeader(b []byte) []byte {
	b = b[:LocalHeaderSize]
	binary.LittleEndian.PutUint32(b[0:4], LocalHeaderMagic)
	binary.LittleEndian.PutUint16(b[4:6], ExtractVersion)
	binary.LittleEndian.PutUint16(b[6:8], e.Flags)
	binary.LittleEndian.PutUint16(b[8:10], MethodStore)
	binary.LittleEndian.PutUint16(b[10:12], e.DOSTime)
	binary.LittleEndian.PutUint16(b[12:14], e.DOSDate)
	if e.Flags&FlagDataDescriptor != 0 {
		binary.LittleEndian.PutUint32(b[14:18], 0)
		binary.LittleEndian.PutUint32(b[18:22], 0)
		binary.LittleEndian.PutUint32(b[22:26], 0)
	} else {
		binary.LittleEndian.PutUint32(b[14:18], e.CRC32)
		binary.LittleEndian.PutUint32(b[18:22], e.Size)
		binary.LittleEndian.PutUint32(b[22:26], e.Size)
	}
	binary.LittleEndian.PutUint16(b[26:28], e.nameLen)
	binary.LittleEndian.PutUint16(b[28:30], e.extraLen)
	return b
}

// PutCentralHeader packs the 46-byte central directory header into b and
// returns the packed slice. Version-made-by, disk number, and both
// attribute words are always zero.
func (e *Entry) PutCentralHeader(b []byte) []byte {
	b = b[:CentralHeaderSize]
	binary.LittleEndian.PutUint32(b[0:4], CentralHeaderMagic)
	binary.LittleEndian.PutUint16(b[4:6], 0) // version made by
	binary.LittleEndian.PutUint16(b[6:8], ExtractVersion)
	binary.LittleEndian.PutUint16(b[8:10], e.Flags)
	binary.LittleEndian.PutUint16(b[10:12], MethodStore)
	binary.LittleEndian.PutUint16(b[12:14], e.DOSTime)
	binary.LittleEndian.PutUint16(b[14:16], e.DOSDate)
	binary.LittleEndian.PutUint32(b[16:20], e.CRC32)
	binary.LittleEndian.PutUint32(b[20:24], e.Size)
	binary.LittleEndian.PutUint32(b[24:28], e.Size)
	binary.LittleEndian.PutUint16(b[28:30], e.nameLen)
	binary.LittleEndian.PutUint16(b[30:32], e.extraLen)
	binary.LittleEndian.PutUint16(b[32:34], e.commentLen)
	binary.LittleEndian.PutUint16(b[34:36], 0) // disk number start
	binary.LittleEndian.PutUint16(b[36:38], 0) // internal attributes
	binary.LittleEndian.PutUint32(b[38:42], 0) // external attributes
	binary.LittleEndian.PutUint32(b[42:46], e.HeaderOffset)
	return b
}

// PutDataDescriptor packs the 16-byte data descriptor into b and returns
// the packed slice.
func (e *Entry) PutDataDescriptor(b []byte) []byte {
	b = b[:DataDescriptorSize]
	binary.LittleEndian.PutUint32(b[0:4], DataDescriptorMagic)
	binary.LittleEndian.PutUint32(b[4:8], e.CRC32)
	binary.LittleEndian.PutUint32(b[8:12], e.Size)
	binary.LittleEndian.PutUint32(b[12:16], e.Size)
	return b
}

// PutEOCD packs the 22-byte end-of-central-directory record into b and
// returns the packed slice. Archives are single-volume, so both disk fields
// are zero and the per-disk and total entry counts match.
func PutEOCD(b []byte, entries uint16, dirSize, dirOffset uint32, commentLen uint16) []byte {
	b = b[:EOCDSize]
	binary.LittleEndian.PutUint32(b[0:4], EOCDMagic)
	binary.LittleEndian.PutUint16(b[4:6], 0) // this disk
	binary.LittleEndian.PutUint16(b[6:8], 0) // directory start disk
	binary.LittleEndian.PutUint16(b[8:10], entries)
	binary.LittleEndian.PutUint16(b[10:12], entries)
	binary.LittleEndian.PutUint32(b[12:16], dirSize)
	binary.LittleEndian.PutUint32(b[16:20], dirOffset)
	binary.LittleEndian.PutUint16(b[20:22], commentLen)
	return b
}
