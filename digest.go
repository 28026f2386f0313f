package shufflecheck

import (
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	shuffleerrors "github.com/tamirms/shufflecheck/errors"
)

// DigestID identifies the streaming hash folded over the merged sequence.
//
// The merge phase feeds every emitted mantissa (little-endian uint64) into
// the digest. Because the merged sequence is the globally sorted multiset
// of generated values, the final digest is independent of the worker
// count: two runs over the same domain must report the same digest, which
// makes it a cheap cross-run and cross-machine reproducibility check on
// top of the duplicate count.
type DigestID uint16

const (
	// DigestXXHash64 uses xxHash64. This is the default.
	DigestXXHash64 DigestID = 0

	// DigestXXH3 uses XXH3-64.
	DigestXXH3 DigestID = 1

	// DigestMurmur3 uses Murmur3-64 (the low half of Murmur3 x64-128).
	DigestMurmur3 DigestID = 2
)

// String returns the digest name.
func (d DigestID) String() string {
	switch d {
	case DigestXXHash64:
		return "xxhash64"
	case DigestXXH3:
		return "xxh3"
	case DigestMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// ParseDigestID maps a digest name (as printed by String) back to its ID.
func ParseDigestID(name string) (DigestID, error) {
	switch name {
	case "xxhash64":
		return DigestXXHash64, nil
	case "xxh3":
		return DigestXXH3, nil
	case "murmur3":
		return DigestMurmur3, nil
	}
	return 0, fmt.Errorf("%w: %q", shuffleerrors.ErrUnknownDigest, name)
}

// newDigest creates the streaming hasher for the given ID.
func newDigest(id DigestID) (hash.Hash64, error) {
	switch id {
	case DigestXXHash64:
		return xxhash.New(), nil
	case DigestXXH3:
		return xxh3.New(), nil
	case DigestMurmur3:
		return murmur3.New64(), nil
	}
	return nil, fmt.Errorf("%w: %d", shuffleerrors.ErrUnknownDigest, id)
}
