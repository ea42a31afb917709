// JSON record decoding.
//
// A corpus of JSON lines is the common case for record search: each record
// is one object and the delimiter is the newline that JSON escapes out of
// every string. Decode turns search results back into values.
package sift

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Decode unmarshals each record into a T. The first record that fails to
// parse aborts the decode with ErrCorruptRecord.
func Decode[T any](records [][]byte) ([]T, error) {
	out := make([]T, len(records))
	for i, rec := range records {
		if err := json.Unmarshal(rec, &out[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrCorruptRecord, i, err)
		}
	}
	return out, nil
}
