package zipwire

import "hash/crc32"

// ChecksumInit seeds a running content checksum.
const ChecksumInit uint32 = 0

// ChecksumUpdate folds p into a running checksum. Folding content chunk by
// chunk yields the same result as a single pass over the whole content.
func ChecksumUpdate(sum uint32, p []byte) uint32 {
	return crc32.Update(sum, crc32.IEEETable, p)
}

// ChecksumFinal converts a finished running checksum into the value stored
// in entry records: the bitwise complement of the conventional IEEE CRC-32.
// Zero-length content therefore stores 0xFFFFFFFF.
func ChecksumFinal(sum uint32) uint32 {
	return ^sum
}

// Checksum returns the record value for a complete content slice.
func Checksum(p []byte) uint32 {
	return ChecksumFinal(ChecksumUpdate(ChecksumInit, p))
}
