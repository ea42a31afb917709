// Block compression for the corpus.
//
// The corpus is cut into fixed-size blocks and each block is compressed
// independently with Zstd, so a read touches only the blocks that cover the
// requested bytes. A block is decoded, length-checked and checksummed
// before any byte of it is returned.
package sift

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder. Both are documented as safe for concurrent use
// and are expensive to construct, so they are allocated once at init.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// block is one compressed slice of the corpus.
type block struct {
	data []byte // zstd frame
	size int    // decompressed length
	sum  uint64 // checksum of decompressed bytes
}

func compress(raw []byte, alg int) block {
	return block{
		data: zstdEncoder.EncodeAll(raw, nil),
		size: len(raw),
		sum:  checksum(raw, alg),
	}
}

func decompress(b block, alg int) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(b.data, make([]byte, 0, b.size))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	if len(out) != b.size {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrCorruptBlock, len(out), b.size)
	}
	if checksum(out, alg) != b.sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptBlock)
	}
	return out, nil
}
