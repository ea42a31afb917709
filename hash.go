// Block checksums.
//
// Every compressed block carries a 64-bit checksum of its decompressed
// bytes, verified each time the block is decoded. Three algorithms are
// supported, selectable via Config.Checksum.
package sift

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Checksum algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// checksum returns the 64-bit digest of data under alg, or 0 for an
// unknown algorithm. Build rejects unknown algorithms before any block is
// hashed.
func checksum(data []byte, alg int) uint64 {
	switch alg {
	case AlgXXHash3:
		return xxh3.Hash(data)
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return h.Sum64()
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return binary.LittleEndian.Uint64(h.Sum(nil))
	default:
		return 0
	}
}

func knownChecksum(alg int) bool {
	return alg == AlgXXHash3 || alg == AlgFNV1a || alg == AlgBlake2b
}
