// The compressed index contract.
//
// Records never looks at how an index stores its bytes. It asks for a rank
// interval, converts ranks to corpus positions, and extracts bounded byte
// ranges. Buffer is the bundled implementation; anything satisfying Index
// can be passed to Wrap.
package sift

// Index is a compressed full-text index over a byte corpus. All positions
// are in decompressed-corpus coordinates. Implementations must be safe for
// concurrent reads.
type Index interface {
	// Range returns the rank interval of every occurrence of query. An
	// empty interval has End < Start.
	Range(query []byte) (Range, error)

	// LookupSA maps a rank returned by Range to the corpus position of
	// that occurrence.
	LookupSA(rank int64) int64

	// Extract returns exactly n bytes starting at pos. Reading past the
	// end of the corpus fails with ErrOutOfRange.
	Extract(pos, n int64) ([]byte, error)

	// ExtractUntil returns the bytes from pos up to, not including, the
	// next delim or the end of the corpus.
	ExtractUntil(pos int64, delim byte) ([]byte, error)

	// RegexSearch returns every match of pattern as a map from match
	// offset to match length. A pattern that does not compile fails with
	// a *PatternError.
	RegexSearch(pattern string) (map[int64]int, error)

	// Size is the length of the decompressed corpus.
	Size() int64
}

// Range is an inclusive interval of suffix-array ranks.
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of ranks in the interval, which is zero or
// negative for an empty one.
func (r Range) Len() int64 {
	return r.End - r.Start + 1
}

// Empty reports whether the interval holds no ranks.
func (r Range) Empty() bool {
	return r.Len() <= 0
}
