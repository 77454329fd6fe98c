package zipstore

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/meigma/zipstore/internal/zipwire"
)

// DefaultCopyBufferSize is the stream-mode copy buffer size used when no
// WithCopyBufferSize option is set.
const DefaultCopyBufferSize = 32 * 1024

// Writer assembles a ZIP archive on an output sink, one entry at a time.
//
// Each Add* call writes that entry's local file header and content
// immediately and records the entry for the central directory, which Finish
// emits. The output is written strictly forward: the sink is never seeked or
// re-read, so any io.Writer serves, including pipes and sockets.
//
// A Writer is not safe for concurrent use. Distinct Writers share no state
// and may be used from different goroutines freely.
type Writer struct {
	w      io.Writer
	file   *os.File // owned handle when constructed by Create
	logger *slog.Logger

	offset      uint64
	entries     []zipwire.Entry
	copyBuf     []byte
	copyBufSize int
	scratch     [zipwire.ScratchSize]byte

	finished bool
	closed   bool
}

// WriterFunc adapts a write callback into the io.Writer a Writer consumes.
type WriterFunc func(p []byte) (int, error)

// Write implements io.Writer.
func (f WriterFunc) Write(p []byte) (int, error) {
	return f(p)
}

// New returns a Writer that assembles an archive on w.
//
// The caller keeps ownership of w; Close does not close it. To build an
// archive in memory, pass a *bytes.Buffer.
func New(w io.Writer, opts ...Option) *Writer {
	zw := &Writer{w: w, copyBufSize: DefaultCopyBufferSize}
	for _, opt := range opts {
		opt(zw)
	}
	return zw
}

// Count returns the number of entries added so far.
func (w *Writer) Count() int {
	return len(w.entries)
}

// Offset returns the total bytes accepted by the sink since construction.
// After a successful Finish this is the full archive size.
func (w *Writer) Offset() uint64 {
	return w.offset
}

// Finish writes the central directory and the end-of-central-directory
// record, completing the archive. Entries appear in the directory in the
// order they were added.
//
// Finish succeeds at most once; later calls return ErrFinished. It does not
// close anything: pair it with Close. A failed Finish leaves already-emitted
// trailer bytes in the stream, which the format cannot retract.
func (w *Writer) Finish(opts ...FinishOption) error {
	cfg := finishConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case w.closed:
		return ErrClosed
	case w.finished:
		return ErrFinished
	case len(cfg.comment) > math.MaxUint16:
		return ErrCommentTooLong
	case w.offset > math.MaxUint32:
		return ErrSizeOverflow
	}

	dirOffset := w.offset
	for i := range w.entries {
		e := &w.entries[i]
		if err := w.write(e.PutCentralHeader(w.scratch[:])); err != nil {
			return fmt.Errorf("write central directory header: %w", err)
		}
		if err := w.write(e.CentralMeta()); err != nil {
			return fmt.Errorf("write central directory metadata: %w", err)
		}
	}

	dirSize := w.offset - dirOffset
	if w.offset+zipwire.EOCDSize+uint64(len(cfg.comment)) > math.MaxUint32 {
		return ErrSizeOverflow
	}

	eocd := zipwire.PutEOCD(w.scratch[:], uint16(len(w.entries)), uint32(dirSize), uint32(dirOffset), uint16(len(cfg.comment)))
	if err := w.write(eocd); err != nil {
		return fmt.Errorf("write end of central directory: %w", err)
	}
	if err := w.write([]byte(cfg.comment)); err != nil {
		return fmt.Errorf("write archive comment: %w", err)
	}

	w.finished = true
	w.log().Info("archive finalized", "entries", len(w.entries), "bytes", w.offset)
	return nil
}

// Close releases the writer's bookkeeping and, when the writer was built by
// Create, closes the owned file handle. Close never writes: an archive that
// was not finished with Finish stays truncated.
//
// The writer is unusable afterwards; every later call returns ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.entries = nil
	w.copyBuf = nil

	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive file: %w", err)
	}
	return nil
}

// write sends p to the sink as one call and advances the offset by the bytes
// accepted. A short write with no error is an error here: the archive's
// offsets assume every byte landed.
func (w *Writer) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	w.offset += uint64(n)
	return nil
}

func (w *Writer) log() *slog.Logger {
	if w.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.logger
}

var _ io.Writer = WriterFunc(nil)
