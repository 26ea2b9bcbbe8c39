package hash

import "github.com/cespare/xxhash/v2"

// Seed mixes a one-byte domain into identifier hashes so that a whole
// identifier and a fragment with identical bytes hash differently.
const (
	SeedAbsolute byte = 0x06
	SeedRelative byte = 0x0d
)

// ID computes the xxHash64 of encoded identifier bytes prefixed by seed.
func ID(seed byte, data []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{seed})
	_, _ = d.Write(data)

	return d.Sum64()
}
