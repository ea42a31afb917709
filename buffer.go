// Buffer: the bundled compressed index.
//
// Buffer holds the corpus as independently compressed blocks plus the
// sampled suffix structures in suffix.go. It never keeps the raw corpus
// as one piece, though the context table holds a ContextLen-byte key per
// distinct suffix prefix.
// Reads go through a cursor that caches the most recently decoded block,
// so a scan that stays inside one block decodes it once. Cursors are
// call-scoped, which is what keeps Buffer safe for concurrent readers
// without locks.
package sift

import (
	"bytes"
	"fmt"
	"log/slog"
)

// Defaults applied by Build for zero-valued Config fields.
const (
	DefaultContextLen = 3
	DefaultBlockSize  = 64 * 1024
	DefaultSampleRate = 32
)

// RecordDelim is the default record delimiter.
const RecordDelim byte = '\n'

// Config holds index construction options. Zero values select defaults.
//
// ContextLen trades memory for query speed: the context table keeps one
// key per distinct ContextLen-byte prefix, so its size grows toward
// ContextLen bytes per corpus position as ContextLen approaches the length
// of the records.
type Config struct {
	ContextLen int          // Bytes of suffix prefix in the context table (default 3)
	BlockSize  int          // Decompressed bytes per compressed block (default 64KB)
	SampleRate int          // One SA sample per this many positions (default 32)
	Checksum   int          // 1=xxHash3, 2=FNV1a, 3=Blake2b
	Delimiter  byte         // Record delimiter (default '\n'; NUL cannot be selected)
	Logger     *slog.Logger // Construction diagnostics (default discards)
}

func (c Config) withDefaults() (Config, error) {
	if c.ContextLen < 0 || c.BlockSize < 0 || c.SampleRate < 0 {
		return c, fmt.Errorf("%w: negative size", ErrInvalidConfig)
	}
	if c.ContextLen == 0 {
		c.ContextLen = DefaultContextLen
	}
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.Checksum == 0 {
		c.Checksum = AlgXXHash3
	}
	if !knownChecksum(c.Checksum) {
		return c, fmt.Errorf("%w: checksum algorithm %d", ErrInvalidConfig, c.Checksum)
	}
	if c.Delimiter == 0 {
		c.Delimiter = RecordDelim
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// Buffer is a compressed, searchable copy of a corpus.
type Buffer struct {
	blocks    []block
	blockSize int64
	size      int64
	alg       int
	delim     byte
	ctxLen    int
	rate      int64

	psi      []int64
	marks    []uint64
	ranks    []int64
	samples  []int64
	contexts map[string]Range
}

// Stats describes the footprint of a Buffer.
type Stats struct {
	Size       int64 // Decompressed corpus bytes
	Blocks     int   // Compressed block count
	BlockBytes int64 // Compressed block bytes
	IndexBytes int64 // psi, sample bitmap, samples and context table
	Samples    int   // Retained SA samples
	Contexts   int   // Distinct context table keys
}

// rangeBytes approximates one context table entry beyond its key.
const rangeBytes = 16

// Build compresses data and indexes it. data is not retained.
func Build(data []byte, cfg Config) (*Buffer, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	b := &Buffer{
		blockSize: int64(cfg.BlockSize),
		size:      int64(len(data)),
		alg:       cfg.Checksum,
		delim:     cfg.Delimiter,
		ctxLen:    cfg.ContextLen,
		rate:      int64(cfg.SampleRate),
	}

	for off := 0; off < len(data); off += cfg.BlockSize {
		end := min(off+cfg.BlockSize, len(data))
		b.blocks = append(b.blocks, compress(data[off:end], b.alg))
	}

	b.sample(data, suffixArray(data))

	st := b.Stats()
	cfg.Logger.Debug("built index",
		"size", st.Size,
		"blocks", st.Blocks,
		"block_bytes", st.BlockBytes,
		"index_bytes", st.IndexBytes,
		"samples", st.Samples,
		"contexts", st.Contexts,
	)
	return b, nil
}

// Size returns the decompressed corpus length.
func (b *Buffer) Size() int64 {
	return b.size
}

// Delim returns the record delimiter the Buffer was built with.
func (b *Buffer) Delim() byte {
	return b.delim
}

// Stats reports block and sample counts and the approximate bytes held.
func (b *Buffer) Stats() Stats {
	st := Stats{
		Size:     b.size,
		Blocks:   len(b.blocks),
		Samples:  len(b.samples),
		Contexts: len(b.contexts),
	}
	for _, blk := range b.blocks {
		st.BlockBytes += int64(len(blk.data))
	}
	st.IndexBytes = 8 * int64(len(b.psi)+len(b.marks)+len(b.ranks)+len(b.samples))
	for key := range b.contexts {
		st.IndexBytes += int64(len(key)) + rangeBytes
	}
	return st
}

// Extract returns n bytes starting at pos.
func (b *Buffer) Extract(pos, n int64) ([]byte, error) {
	if pos < 0 || n < 0 || pos > b.size || n > b.size-pos {
		return nil, fmt.Errorf("%w: extract %d bytes at %d of %d", ErrOutOfRange, n, pos, b.size)
	}
	return b.cursor().read(make([]byte, 0, n), pos, n)
}

// ExtractUntil returns the bytes from pos up to the next delim or the end
// of the corpus. pos == Size() yields an empty slice.
func (b *Buffer) ExtractUntil(pos int64, delim byte) ([]byte, error) {
	if pos < 0 || pos > b.size {
		return nil, fmt.Errorf("%w: extract from %d of %d", ErrOutOfRange, pos, b.size)
	}
	return b.cursor().until([]byte{}, pos, delim)
}

// cursor reads decompressed bytes, holding on to the last decoded block.
type cursor struct {
	b    *Buffer
	idx  int
	data []byte
}

func (b *Buffer) cursor() *cursor {
	return &cursor{b: b, idx: -1}
}

func (c *cursor) load(i int) ([]byte, error) {
	if i != c.idx {
		data, err := decompress(c.b.blocks[i], c.b.alg)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		c.idx, c.data = i, data
	}
	return c.data, nil
}

// read appends the n bytes at pos to dst. The caller bounds-checks.
func (c *cursor) read(dst []byte, pos, n int64) ([]byte, error) {
	for n > 0 {
		data, err := c.load(int(pos / c.b.blockSize))
		if err != nil {
			return nil, err
		}
		off := pos % c.b.blockSize
		take := min(int64(len(data))-off, n)
		dst = append(dst, data[off:off+take]...)
		pos += take
		n -= take
	}
	return dst, nil
}

// until appends the bytes from pos up to delim or the corpus end to dst.
func (c *cursor) until(dst []byte, pos int64, delim byte) ([]byte, error) {
	for pos < c.b.size {
		data, err := c.load(int(pos / c.b.blockSize))
		if err != nil {
			return nil, err
		}
		off := pos % c.b.blockSize
		if j := bytes.IndexByte(data[off:], delim); j >= 0 {
			return append(dst, data[off:off+int64(j)]...), nil
		}
		dst = append(dst, data[off:]...)
		pos += int64(len(data)) - off
	}
	return dst, nil
}
