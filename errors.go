package zipstore

import "errors"

// Validation errors, returned before anything is written to the sink.
var (
	// ErrInvalidName is returned when an entry name is empty.
	ErrInvalidName = errors.New("zipstore: empty entry name")

	// ErrNameTooLong is returned when an entry name exceeds the 16-bit
	// length field of the header records.
	ErrNameTooLong = errors.New("zipstore: entry name too long")

	// ErrCommentTooLong is returned when an entry or archive comment
	// exceeds the 16-bit length field of the header records.
	ErrCommentTooLong = errors.New("zipstore: comment too long")

	// ErrNilReader is returned when a stream-mode add is given a nil
	// content source.
	ErrNilReader = errors.New("zipstore: nil reader")

	// ErrTooManyEntries is returned when the archive already holds the
	// 65535 entries the end-of-central-directory record can count.
	ErrTooManyEntries = errors.New("zipstore: too many entries")

	// ErrSizeOverflow is returned when a content size, directory size, or
	// record offset does not fit the format's 32-bit fields. The writer
	// does not produce ZIP64 archives.
	ErrSizeOverflow = errors.New("zipstore: size overflow")
)

// Lifecycle errors.
var (
	// ErrFinished is returned by operations on a writer whose central
	// directory has already been written.
	ErrFinished = errors.New("zipstore: archive already finalized")

	// ErrClosed is returned by operations on a closed writer.
	ErrClosed = errors.New("zipstore: writer closed")
)
