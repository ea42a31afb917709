// Package sift answers record-level queries over a compressed full-text
// index. The corpus is a sequence of delimiter-terminated records whose
// start offsets are held in an immutable offset table. Substring and regex
// matches come back from the index as suffix-array ranks or raw positions;
// sift resolves each one to its enclosing record with a binary search over
// the offset table, collapses repeated hits on the same record, and pulls
// record bytes straight out of the compressed blocks. The full corpus is
// never decompressed at once.
//
// Buffer is the bundled index: zstd-compressed blocks, a sampled suffix
// array walked through a successor array, and a context table that narrows
// the rank interval before binary search. Any other implementation of the
// Index interface can be wrapped instead.
package sift

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// tell caller mistakes (ErrBadOffsets, ErrInvalidPattern, ErrOutOfRange)
// apart from corruption (ErrCorruptBlock, ErrDecompress, ErrCorruptRecord).
var (
	ErrNoOffsets      = errors.New("offset table is empty")
	ErrBadOffsets     = errors.New("malformed offset table")
	ErrOutOfRange     = errors.New("position out of range")
	ErrInvalidPattern = errors.New("invalid regex pattern")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrCorruptBlock   = errors.New("corrupt block")
	ErrDecompress     = errors.New("decompression failed")
	ErrCorruptRecord  = errors.New("corrupt record")
)

// PatternError reports a pattern the regex engine refused to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

// Unwrap exposes both ErrInvalidPattern and the underlying parser error.
func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}
