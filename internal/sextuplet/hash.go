package sextuplet

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/bigint"
)

// Hash is the 256-bit target hash a pool client supplies to search(). It
// reuses chainhash.Hash's fixed-size little-endian byte array rather than
// inventing a parallel type: the interchange contract (32 raw bytes, no
// display-order reversal on the wire) is identical.
type Hash = chainhash.Hash

// HashFromBytes builds a Hash from a 32-byte little-endian slice, per the
// "little-endian big-integer form" interchange spec.md §6 requires.
func HashFromBytes(b [32]byte) Hash {
	var h Hash
	copy(h[:], b[:])
	return h
}

// hashToInt interprets the hash as the unsigned big-integer value h (spec.md
// §3's "Candidate" entity).
func hashToInt(h Hash) *bigint.Int {
	return bigint.FromBytesLE(h[:])
}
