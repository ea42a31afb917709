// Offset table validation and position-to-record resolution.
//
// The offset table is the only source of record boundaries. The delimiter
// is a scan-stop marker for extraction and is never consulted here.
package sift

import (
	"fmt"
	"slices"
)

// checkOffsets validates an offset table against a corpus of size bytes:
// non-empty, starting at 0, strictly increasing, and every later record
// starting inside the corpus.
func checkOffsets(offsets []int64, size int64) error {
	if len(offsets) == 0 {
		return ErrNoOffsets
	}
	if offsets[0] != 0 {
		return fmt.Errorf("%w: first offset %d, want 0", ErrBadOffsets, offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			return fmt.Errorf("%w: offset %d at index %d not above %d", ErrBadOffsets, offsets[i], i, offsets[i-1])
		}
		if offsets[i] >= size {
			return fmt.Errorf("%w: offset %d at index %d past corpus end %d", ErrBadOffsets, offsets[i], i, size)
		}
	}
	return nil
}

// Resolve returns the index of the record containing pos: the exact hit
// when pos is a record start, otherwise its predecessor. Positions before
// the first record resolve to 0.
func (r *Records) Resolve(pos int64) int {
	i, found := slices.BinarySearch(r.offsets, pos)
	if found {
		return i
	}
	return max(i-1, 0)
}

// bounds returns the start of record i and the start of the next one, or
// the corpus size for the last record.
func (r *Records) bounds(i int) (start, next int64) {
	start = r.offsets[i]
	if i == len(r.offsets)-1 {
		return start, r.size
	}
	return start, r.offsets[i+1]
}
