package zipstore

import (
	"log/slog"
	"time"
)

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets a logger for the writer.
// Defaults to a no-op logger if not set.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithCopyBufferSize sets the buffer size used while streaming content in
// AddReader, AddFile, and AddPath. Values < 1 use DefaultCopyBufferSize.
func WithCopyBufferSize(n int) Option {
	return func(w *Writer) {
		if n < 1 {
			n = DefaultCopyBufferSize
		}
		w.copyBufSize = n
	}
}

// entryConfig holds per-entry configuration.
type entryConfig struct {
	modTime    time.Time
	modTimeSet bool
	comment    string
}

// EntryOption configures a single Add* call.
type EntryOption func(*entryConfig)

// EntryWithModTime sets the entry's modification time explicitly.
// Buffer-mode adds default to the current time; AddFile and AddPath default
// to the source file's modification time.
func EntryWithModTime(t time.Time) EntryOption {
	return func(cfg *entryConfig) {
		cfg.modTime = t
		cfg.modTimeSet = true
	}
}

// EntryWithComment attaches a comment to the entry's central directory
// record.
func EntryWithComment(comment string) EntryOption {
	return func(cfg *entryConfig) {
		cfg.comment = comment
	}
}

// finishConfig holds configuration for Finish.
type finishConfig struct {
	comment string
}

// FinishOption configures Finish.
type FinishOption func(*finishConfig)

// FinishWithComment sets the archive comment carried by the
// end-of-central-directory record.
func FinishWithComment(comment string) FinishOption {
	return func(cfg *finishConfig) {
		cfg.comment = comment
	}
}
