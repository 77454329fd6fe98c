// Package zipstore builds ZIP archives incrementally, storing every entry
// uncompressed.
//
// A [Writer] is bound to any io.Writer and emits the archive strictly
// forward: each added entry's local file header and content are written
// immediately, and [Writer.Finish] appends the central directory and
// end-of-central-directory record. Nothing is seeked or rewritten, so
// archives can be assembled directly onto pipes, sockets, or growing files.
//
// Entries whose size is known up front (byte slices) are written with their
// checksum and sizes in the local header. Streamed entries (readers, files)
// are written with flag bit 3 set and a trailing data descriptor record
// carrying the values learned while copying. Every entry carries an
// extended-timestamp extra field.
//
// # Quick Start
//
// Build an archive in memory:
//
//	var buf bytes.Buffer
//	w := zipstore.New(&buf)
//	if err := w.Add("hello.txt", []byte("hello world")); err != nil {
//	    return err
//	}
//	if err := w.Finish(); err != nil {
//	    return err
//	}
//	_ = w.Close()
//	// buf.Bytes() is a complete ZIP archive.
//
// Stream files from disk into an archive file:
//
//	w, err := zipstore.Create("backup.zip")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.AddPath("etc/config.yaml", "/etc/app/config.yaml"); err != nil {
//	    return err
//	}
//	if err := w.Finish(zipstore.FinishWithComment("nightly backup")); err != nil {
//	    return err
//	}
//
// # Limits
//
// The writer produces classic (non-ZIP64) archives: entry sizes, offsets,
// and the directory must fit 32-bit fields, and at most 65535 entries fit
// one archive. Exceeding a limit returns [ErrSizeOverflow] or
// [ErrTooManyEntries] rather than emitting a corrupt record.
package zipstore
