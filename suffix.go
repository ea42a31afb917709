// Suffix array sampling and rank queries.
//
// Build sorts every suffix of the corpus, then throws most of the suffix
// array away. What survives:
//
//   - psi: psi[r] is the rank of the suffix one position to the right of
//     the suffix at rank r (cyclic, so the last suffix points at rank of 0).
//   - samples: SA values whose position is a multiple of the sample rate,
//     stored in rank order, located through a bitmap with per-word
//     popcount prefix sums.
//   - contexts: the rank interval shared by every suffix that starts with
//     the same ContextLen bytes.
//
// LookupSA walks psi from any rank until it lands on a sampled one; each
// step moves one position right, so sample minus steps is the answer and
// the walk is bounded by the sample rate. Range narrows the search with
// the context table and binary-searches the rest by extracting a query's
// worth of bytes at each probe.
package sift

import (
	"bytes"
	"cmp"
	"math/bits"
	"slices"
	"sort"
)

// suffixArray returns the suffix array of data by prefix doubling. Suffixes
// compare byte-wise, a proper prefix sorting before its extensions.
func suffixArray(data []byte) []int64 {
	n := len(data)
	if n == 0 {
		return nil
	}

	sa := make([]int64, n)
	rank := make([]int64, n)
	next := make([]int64, n)
	for i := range n {
		sa[i] = int64(i)
		rank[i] = int64(data[i])
	}

	for k := 1; ; k <<= 1 {
		// second is the rank k positions on, or -1 past the end.
		second := func(i int64) int64 {
			if j := int(i) + k; j < n {
				return rank[j]
			}
			return -1
		}
		order := func(a, b int64) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			return cmp.Compare(second(a), second(b))
		}

		slices.SortFunc(sa, order)

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if order(sa[i-1], sa[i]) < 0 {
				next[sa[i]]++
			}
		}
		copy(rank, next)

		if rank[sa[n-1]] == int64(n-1) || k >= n {
			break
		}
	}
	return sa
}

// sample derives psi, the sampled SA and the context table from the full
// suffix array. data and sa are not retained.
func (b *Buffer) sample(data []byte, sa []int64) {
	n := int64(len(sa))
	if n == 0 {
		b.contexts = map[string]Range{}
		return
	}

	isa := make([]int64, n)
	for r, p := range sa {
		isa[p] = int64(r)
	}

	b.psi = make([]int64, n)
	for r, p := range sa {
		b.psi[r] = isa[(p+1)%n]
	}

	words := (n + 63) / 64
	b.marks = make([]uint64, words)
	b.ranks = make([]int64, words)
	for r, p := range sa {
		if p%b.rate == 0 {
			b.marks[r/64] |= uint64(1) << (r % 64)
			b.samples = append(b.samples, p)
		}
	}
	var total int64
	for w, m := range b.marks {
		b.ranks[w] = total
		total += int64(bits.OnesCount64(m))
	}

	b.contexts = make(map[string]Range)
	for r, p := range sa {
		key := string(data[p:min(p+int64(b.ctxLen), n)])
		if rg, ok := b.contexts[key]; ok {
			rg.End = int64(r)
			b.contexts[key] = rg
		} else {
			b.contexts[key] = Range{Start: int64(r), End: int64(r)}
		}
	}
}

func (b *Buffer) marked(rank int64) bool {
	return b.marks[rank/64]&(uint64(1)<<(rank%64)) != 0
}

// sampleIndex counts the marked ranks before rank.
func (b *Buffer) sampleIndex(rank int64) int64 {
	w := rank / 64
	below := b.marks[w] & (uint64(1)<<(rank%64) - 1)
	return b.ranks[w] + int64(bits.OnesCount64(below))
}

// LookupSA returns the corpus position of the suffix at rank.
func (b *Buffer) LookupSA(rank int64) int64 {
	var steps int64
	for !b.marked(rank) {
		rank = b.psi[rank]
		steps++
	}
	pos := b.samples[b.sampleIndex(rank)] - steps
	if pos < 0 {
		pos += b.size // walked across the wrap from the last suffix to 0
	}
	return pos
}

// Range returns the rank interval of suffixes that start with query. An
// empty query matches every suffix.
func (b *Buffer) Range(query []byte) (Range, error) {
	none := Range{Start: 0, End: -1}
	lo, hi := int64(0), b.size-1

	if len(query) >= b.ctxLen {
		rg, ok := b.contexts[string(query[:b.ctxLen])]
		if !ok {
			return none, nil
		}
		if len(query) == b.ctxLen {
			return rg, nil
		}
		lo, hi = rg.Start, rg.End
	}
	if lo > hi {
		return none, nil
	}

	c := b.cursor()
	scratch := make([]byte, 0, len(query))
	var err error

	// compare orders the suffix at rank against query on the first
	// len(query) bytes.
	compare := func(rank int64) int {
		if err != nil {
			return 0
		}
		pos := b.LookupSA(rank)
		prefix, e := c.read(scratch[:0], pos, min(int64(len(query)), b.size-pos))
		if e != nil {
			err = e
			return 0
		}
		return bytes.Compare(prefix, query)
	}

	start := lo + int64(sort.Search(int(hi-lo+1), func(i int) bool {
		return compare(lo+int64(i)) >= 0
	}))
	end := start + int64(sort.Search(int(hi-start+1), func(i int) bool {
		return compare(start+int64(i)) > 0
	})) - 1

	if err != nil {
		return none, err
	}
	return Range{Start: start, End: end}, nil
}
