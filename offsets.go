// Offset table derivation.
package sift

import "bytes"

// Offsets returns the offset table of data: 0, then the position after
// every delim that is not the last byte. An empty corpus still has one
// record at offset 0.
func Offsets(data []byte, delim byte) []int64 {
	offsets := []int64{0}
	pos := 0
	for {
		i := bytes.IndexByte(data[pos:], delim)
		if i < 0 {
			break
		}
		pos += i + 1
		if pos >= len(data) {
			break
		}
		offsets = append(offsets, int64(pos))
	}
	return offsets
}
