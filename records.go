// Record layer type and construction.
//
// Records pairs an Index with the offset table of the corpus it indexes.
// Both are fixed at construction; every query is a pure function of its
// input and that pair, so a Records value may be shared freely between
// goroutines as long as its Index supports concurrent reads (Buffer does).
package sift

import (
	"fmt"
	"slices"
)

// Records answers record-level queries over an Index.
type Records struct {
	index   Index
	offsets []int64
	size    int64
	delim   byte
}

// New builds a Buffer over data with the default context length and wraps
// it with offsets.
func New(data []byte, offsets []int64) (*Records, error) {
	return NewContext(data, offsets, DefaultContextLen)
}

// NewContext is New with an explicit context length for the index.
func NewContext(data []byte, offsets []int64, contextLen int) (*Records, error) {
	return Open(data, offsets, Config{ContextLen: contextLen})
}

// Open builds a Buffer over data using cfg and wraps it with offsets. The
// record delimiter is taken from cfg.
func Open(data []byte, offsets []int64, cfg Config) (*Records, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	// Validate before paying for the suffix sort.
	if err := checkOffsets(offsets, int64(len(data))); err != nil {
		return nil, err
	}

	buf, err := Build(data, cfg)
	if err != nil {
		return nil, err
	}
	r, err := Wrap(buf, offsets)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debug("opened records", "records", len(r.offsets), "size", r.size)
	return r, nil
}

// delimiter is implemented by indexes that know their record delimiter.
type delimiter interface {
	Delim() byte
}

// Wrap returns a record layer over an existing index. The offset table is
// validated and copied. Records are delimited by the index's Delim if it
// has one, RecordDelim otherwise.
func Wrap(idx Index, offsets []int64) (*Records, error) {
	size := idx.Size()
	if err := checkOffsets(offsets, size); err != nil {
		return nil, err
	}
	delim := RecordDelim
	if d, ok := idx.(delimiter); ok {
		delim = d.Delim()
	}
	return &Records{
		index:   idx,
		offsets: slices.Clone(offsets),
		size:    size,
		delim:   delim,
	}, nil
}

// Delim returns the record delimiter.
func (r *Records) Delim() byte {
	return r.delim
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.offsets)
}

// Size returns the decompressed corpus length.
func (r *Records) Size() int64 {
	return r.size
}

// Offsets returns a copy of the offset table.
func (r *Records) Offsets() []int64 {
	return slices.Clone(r.offsets)
}

// Index returns the underlying index.
func (r *Records) Index() Index {
	return r.index
}

// Record returns record i up to, not including, its delimiter.
func (r *Records) Record(i int) ([]byte, error) {
	if i < 0 || i >= len(r.offsets) {
		return nil, fmt.Errorf("%w: record %d of %d", ErrOutOfRange, i, len(r.offsets))
	}
	return r.index.ExtractUntil(r.offsets[i], r.delim)
}
