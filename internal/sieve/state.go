package sieve

import (
	"sync/atomic"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

const wordBits = 32

// State is the dual bitmap covering [0, SieveWindow) sieve positions for
// one search round, plus the per-prime, per-offset reset offsets the
// low-prime sieve owns exclusively. Bits only ever transition 0->1 during a
// round (spec.md §3's SieveState invariant): LowBits is written by the
// Sieve, HighBits is written by the Sieve's high-prime path, and both are
// read concurrently by Tester workers once the Sieve has populated them.
type State struct {
	LowBits  []atomic.Uint32
	HighBits []atomic.Uint32

	// Offsets[o][j] is the next k (mod Primes[j]) that would hit
	// constellation offset o, for j in [FirstSieveIndex, LowPrimeSplit).
	// Owned exclusively by the Sieve; the Tester never reads it.
	Offsets [6][]uint32
}

// NewState allocates a cleared dual bitmap and offsets table sized for one
// round.
func NewState() *State {
	words := sextuplet.SieveWindow/wordBits + 1
	s := &State{
		LowBits:  make([]atomic.Uint32, words),
		HighBits: make([]atomic.Uint32, words),
	}
	for o := range s.Offsets {
		s.Offsets[o] = make([]uint32, sextuplet.LowPrimeSplit)
	}
	return s
}

// markLow sets bit k in LowBits using a relaxed atomic OR, the minimum
// synchronisation contract spec.md §5 requires for word-granularity writes
// shared with concurrently running Tester workers.
func (s *State) markLow(k uint64) {
	atomicOr(&s.LowBits[k/wordBits], 1<<(k%wordBits))
}

// markHigh sets bit k in HighBits using a relaxed atomic OR.
func (s *State) markHigh(k uint64) {
	atomicOr(&s.HighBits[k/wordBits], 1<<(k%wordBits))
}

// Clear reports whether sieve position k survived: both bitmaps are zero
// at k.
func (s *State) Clear(k uint64) bool {
	w := k / wordBits
	b := uint32(1) << (k % wordBits)
	if s.LowBits[w].Load()&b != 0 {
		return false
	}
	return s.HighBits[w].Load()&b == 0
}

// MarkLowForTest exposes markLow to other packages' tests. Production
// code never marks bits outside the Sieve itself.
func (s *State) MarkLowForTest(k uint64) { s.markLow(k) }

// atomicOr performs word |= mask via a compare-and-swap retry loop, since
// sync/atomic has no native OR primitive.
func atomicOr(word *atomic.Uint32, mask uint32) {
	for {
		old := word.Load()
		if old&mask == mask {
			return
		}
		if word.CompareAndSwap(old, old|mask) {
			return
		}
	}
}
