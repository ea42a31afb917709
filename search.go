// Record-level search.
//
// A substring query comes back from the index as a rank interval. Each rank
// is turned into a corpus position with LookupSA and then into a record
// with Resolve; several occurrences in one record collapse to a single
// hit. Regex queries skip the rank step: the index returns raw match
// offsets, which are resolved the same way.
//
// Nothing is cached between calls. MatchCount repeats the whole traversal,
// so a caller that needs both the offsets and their count should take the
// length of MatchingRecordOffsets instead of calling both.
package sift

import (
	"maps"
	"slices"
)

// MatchingRecordOffsets returns the start offset of every record containing
// query, ascending. An unmatched query returns nil.
func (r *Records) MatchingRecordOffsets(query []byte) ([]int64, error) {
	rg, err := r.index.Range(query)
	if err != nil {
		return nil, err
	}
	if rg.Empty() {
		return nil, nil
	}

	seen := make(map[int64]struct{})
	for rank := rg.Start; rank <= rg.End; rank++ {
		seen[r.offsets[r.Resolve(r.index.LookupSA(rank))]] = struct{}{}
	}

	return slices.Sorted(maps.Keys(seen)), nil
}

// MatchingRecords returns the bytes of every record containing query, each
// once, in the order its first occurrence appears in the rank interval.
func (r *Records) MatchingRecords(query []byte) ([][]byte, error) {
	rg, err := r.index.Range(query)
	if err != nil {
		return nil, err
	}
	if rg.Empty() {
		return nil, nil
	}

	seen := make(map[int64]struct{})
	var results [][]byte
	for rank := rg.Start; rank <= rg.End; rank++ {
		offset := r.offsets[r.Resolve(r.index.LookupSA(rank))]
		if _, ok := seen[offset]; ok {
			continue
		}
		seen[offset] = struct{}{}

		record, err := r.index.ExtractUntil(offset, r.delim)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}

	return results, nil
}

// MatchCount returns the number of distinct records containing query.
func (r *Records) MatchCount(query []byte) (int, error) {
	offsets, err := r.MatchingRecordOffsets(query)
	if err != nil {
		return 0, err
	}
	return len(offsets), nil
}

// MatchingRecordsByPattern returns the bytes of every record containing a
// match of the regex pattern, each once, in corpus order. An invalid
// pattern fails with a *PatternError and no records.
func (r *Records) MatchingRecordsByPattern(pattern string) ([][]byte, error) {
	matches, err := r.index.RegexSearch(pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	var results [][]byte
	for _, pos := range slices.Sorted(maps.Keys(matches)) {
		offset := r.offsets[r.Resolve(pos)]
		if _, ok := seen[offset]; ok {
			continue
		}
		seen[offset] = struct{}{}

		record, err := r.index.ExtractUntil(offset, r.delim)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}

	return results, nil
}
