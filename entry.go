package zipstore

import (
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"

	"github.com/meigma/zipstore/internal/zipwire"
)

// Add appends one entry whose content is fully in memory. The checksum and
// sizes are known up front, so the local file header carries the real values
// and no data descriptor follows.
//
// data may be nil or empty for a zero-length entry. The modification time
// defaults to the current time.
//
// On failure nothing is recorded: the entry count and offset are as they
// were before the call, and the writer stays usable.
func (w *Writer) Add(name string, data []byte, opts ...EntryOption) error {
	cfg := applyEntryOpts(opts)
	if err := w.checkAdd(name, &cfg); err != nil {
		return err
	}
	if uint64(len(data)) > math.MaxUint32 {
		return ErrSizeOverflow
	}

	e := zipwire.NewEntry(name, w.modTime(cfg), cfg.comment)
	e.CRC32 = zipwire.Checksum(data)
	e.Size = uint32(len(data))
	e.HeaderOffset = uint32(w.offset)

	start := w.offset
	if err := w.writeLocal(&e); err != nil {
		w.offset = start
		return err
	}
	if err := w.write(data); err != nil {
		w.offset = start
		return fmt.Errorf("write content: %w", err)
	}

	w.entries = append(w.entries, e)
	w.log().Debug("entry added", "name", name, "size", e.Size, "offset", e.HeaderOffset)
	return nil
}

// AddDir appends a zero-length directory entry, adding the trailing slash
// that marks directories by convention if name lacks one.
func (w *Writer) AddDir(name string, opts ...EntryOption) error {
	if name != "" && !strings.HasSuffix(name, "/") {
		name += "/"
	}
	return w.Add(name, nil, opts...)
}

// AddReader appends one entry whose content is streamed from r until EOF.
//
// The content length and checksum are unknown when the local file header is
// written, so the header carries zeroes with flag bit 3 set and the true
// values follow the content in a data descriptor record. Content is copied
// through a fixed-size buffer; r is never buffered whole in memory.
//
// The modification time defaults to the current time. The rollback contract
// matches Add: a failed call records nothing, though bytes already accepted
// by the sink before the failure remain in the stream.
func (w *Writer) AddReader(name string, r io.Reader, opts ...EntryOption) error {
	cfg := applyEntryOpts(opts)
	if err := w.checkAdd(name, &cfg); err != nil {
		return err
	}
	if r == nil {
		return ErrNilReader
	}

	e := zipwire.NewEntry(name, w.modTime(cfg), cfg.comment)
	e.Flags = zipwire.FlagDataDescriptor
	e.HeaderOffset = uint32(w.offset)

	start := w.offset
	if err := w.writeLocal(&e); err != nil {
		w.offset = start
		return err
	}
	if err := w.copyContent(&e, r); err != nil {
		w.offset = start
		return err
	}
	if err := w.write(e.PutDataDescriptor(w.scratch[:])); err != nil {
		w.offset = start
		return fmt.Errorf("write data descriptor: %w", err)
	}

	w.entries = append(w.entries, e)
	w.log().Debug("entry added", "name", name, "size", e.Size, "offset", e.HeaderOffset, "streamed", true)
	return nil
}

// AddFile appends one entry streamed from an open file. The modification
// time comes from f.Stat unless EntryWithModTime overrides it. The caller
// keeps ownership of f; it is read to EOF but not closed.
func (w *Writer) AddFile(name string, f fs.File, opts ...EntryOption) error {
	if f == nil {
		return ErrNilReader
	}

	cfg := applyEntryOpts(opts)
	if !cfg.modTimeSet {
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat content file: %w", err)
		}
		opts = append(opts, EntryWithModTime(info.ModTime()))
	}
	return w.AddReader(name, f, opts...)
}

// AddPath opens the file at path, appends it as a streamed entry named name,
// and closes it. The modification time comes from the file unless
// EntryWithModTime overrides it. Open failures carry the platform's error.
func (w *Writer) AddPath(name, path string, opts ...EntryOption) error {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()
	return w.AddFile(name, f, opts...)
}

// checkAdd validates an add call against the writer's state and the
// format's field widths. Nothing is written until it passes.
func (w *Writer) checkAdd(name string, cfg *entryConfig) error {
	switch {
	case w.closed:
		return ErrClosed
	case w.finished:
		return ErrFinished
	case name == "":
		return ErrInvalidName
	case len(name) > math.MaxUint16:
		return ErrNameTooLong
	case len(cfg.comment) > math.MaxUint16:
		return ErrCommentTooLong
	case len(w.entries) >= math.MaxUint16:
		return ErrTooManyEntries
	case w.offset > math.MaxUint32:
		return ErrSizeOverflow
	}
	return nil
}

// writeLocal emits the local file header and the name+extra metadata as two
// sink writes, matching the record granularity of the rest of the writer.
func (w *Writer) writeLocal(e *zipwire.Entry) error {
	if err := w.write(e.PutLocalHeader(w.scratch[:])); err != nil {
		return fmt.Errorf("write local header: %w", err)
	}
	if err := w.write(e.LocalMeta()); err != nil {
		return fmt.Errorf("write local metadata: %w", err)
	}
	return nil
}

// copyContent streams r to the sink through the reusable copy buffer,
// accumulating the checksum and byte count into e.
func (w *Writer) copyContent(e *zipwire.Entry, r io.Reader) error {
	if w.copyBuf == nil {
		w.copyBuf = make([]byte, w.copyBufSize)
	}

	sum := zipwire.ChecksumInit
	var total uint64
	for {
		n, rerr := r.Read(w.copyBuf)
		if n > 0 {
			total += uint64(n)
			if total > math.MaxUint32 {
				return ErrSizeOverflow
			}
			if err := w.write(w.copyBuf[:n]); err != nil {
				return fmt.Errorf("write content: %w", err)
			}
			sum = zipwire.ChecksumUpdate(sum, w.copyBuf[:n])
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read content: %w", rerr)
		}
	}

	e.CRC32 = zipwire.ChecksumFinal(sum)
	e.Size = uint32(total)
	return nil
}

// modTime resolves an entry's modification time, defaulting to now.
func (w *Writer) modTime(cfg entryConfig) time.Time {
	if cfg.modTimeSet {
		return cfg.modTime
	}
	return time.Now()
}

func applyEntryOpts(opts []EntryOption) entryConfig {
	cfg := entryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
