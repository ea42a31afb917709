// Regex search over compressed blocks.
//
// Blocks are decoded one at a time. The decoded bytes are appended to the
// unterminated tail of the previous window, and the pattern runs over the
// prefix that ends at the last delimiter; whatever follows is carried into
// the next window. A record is therefore always evaluated whole, however
// many blocks it straddles, and memory stays bounded by one block plus the
// longest record. The final window runs to the corpus end whether or not
// it is terminated.
//
// The pattern is matched against each record on its own, without the
// delimiter, so ^ and $ anchor at record boundaries whatever the block size
// and a pattern can never match across two records.
package sift

import (
	"bytes"
	"regexp"
)

// RegexSearch returns the offset and length of every non-overlapping match
// of pattern, evaluated record by record.
func (b *Buffer) RegexSearch(pattern string) (map[int64]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	matches := make(map[int64]int)
	c := b.cursor()

	var carry []byte
	var base int64 // corpus position of carry[0]

	for i := range b.blocks {
		data, err := c.load(i)
		if err != nil {
			return nil, err
		}

		window := append(carry, data...)
		cut := bytes.LastIndexByte(window, b.delim) + 1
		if i == len(b.blocks)-1 {
			cut = len(window)
		}

		matchRecords(re, window[:cut], b.delim, base, matches)

		carry = append([]byte(nil), window[cut:]...)
		base += int64(cut)
	}

	return matches, nil
}

// matchRecords adds the matches of re in every delim-terminated record of
// window to matches. A trailing unterminated record is matched too. base is
// the corpus position of window[0].
func matchRecords(re *regexp.Regexp, window []byte, delim byte, base int64, matches map[int64]int) {
	for len(window) > 0 {
		end := bytes.IndexByte(window, delim)
		next := end + 1
		if end < 0 {
			end, next = len(window), len(window)
		}
		for _, loc := range re.FindAllIndex(window[:end], -1) {
			matches[base+int64(loc[0])] = loc[1] - loc[0]
		}
		window = window[next:]
		base += int64(next)
	}
}
