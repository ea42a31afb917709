// Per-record field extraction.
package sift

// ExtractFields returns one slice per record, index-aligned with the offset
// table. Each starts fieldOffset bytes into its record and holds maxLength
// bytes when that many fit before the next record starts; otherwise it runs
// up to the record delimiter. A fieldOffset past a record's end is passed
// through to the index unchecked.
func (r *Records) ExtractFields(fieldOffset, maxLength int64) ([][]byte, error) {
	fields := make([][]byte, len(r.offsets))
	for i := range r.offsets {
		start, next := r.bounds(i)
		cur := start + fieldOffset

		var err error
		if maxLength < next-cur {
			fields[i], err = r.index.Extract(cur, maxLength)
		} else {
			fields[i], err = r.index.ExtractUntil(cur, r.delim)
		}
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}
