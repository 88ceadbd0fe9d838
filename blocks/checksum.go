package blocks

import (
	"github.com/cespare/xxhash/v2"
)

// Checksum computes checksum of bytes.
func Checksum(p []byte) Hash {
	return Hash(xxhash.Sum64(p))
}
