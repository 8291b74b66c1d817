package sieve

import (
	"context"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

// Engine drives one round's sieve: given a Candidate it initialises the
// per-prime offsets and strikes every composite bit in a fresh State
// (spec.md §4.2).
type Engine struct{}

// NewEngine returns a ready-to-use Engine. Engine holds no per-round
// state; a single instance may be reused across rounds.
func NewEngine() *Engine { return &Engine{} }

// Sieve populates state for candidate cand against table, striking every
// sieve position that is composite at any of the six constellation
// offsets for some prime <= sextuplet.MaxSievePrime. It checks ctx between
// the low-prime and high-prime passes so a stale round can abort promptly.
func (e *Engine) Sieve(ctx context.Context, table *primetable.Table, cand *sextuplet.Candidate, state *State) error {
	if err := e.initLowPrimeOffsets(table, cand, state); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	e.sieveLowPrimes(table, state)

	if err := ctx.Err(); err != nil {
		return err
	}

	e.sieveHighPrimes(table, cand, state)

	return ctx.Err()
}

// initLowPrimeOffsets computes the six initial residues for every low
// prime (spec.md §4.2 Step 2).
func (e *Engine) initLowPrimeOffsets(table *primetable.Table, cand *sextuplet.Candidate, state *State) error {
	debugCheckInverses(table)

	for j := sextuplet.FirstSieveIndex; j < sextuplet.LowPrimeSplit; j++ {
		p := table.At(j)
		qinv := table.InverseAt(j)
		r := cand.XC().ModUint32(p)

		off := sixResidues(p, qinv, r)
		for o := 0; o < 6; o++ {
			state.Offsets[o][j] = off[o]
		}
	}
	return nil
}

// sieveLowPrimes sweeps every segment, for every low prime and offset,
// striking lowBits at stride p and carrying the running offset into the
// next segment (spec.md §4.2 Step 3).
func (e *Engine) sieveLowPrimes(table *primetable.Table, state *State) {
	for segStart := uint64(0); segStart < sextuplet.SieveWindow; segStart += sextuplet.SegmentLength {
		for j := sextuplet.FirstSieveIndex; j < sextuplet.LowPrimeSplit; j++ {
			p := uint64(table.At(j))
			if p >= sextuplet.SieveWindow {
				continue
			}
			for o := 0; o < 6; o++ {
				k := uint64(state.Offsets[o][j])
				for k < sextuplet.SegmentLength {
					state.markLow(segStart + k)
					k += p
				}
				state.Offsets[o][j] = uint32(k - sextuplet.SegmentLength)
			}
		}
	}
}

// sieveHighPrimes strikes every window position each high prime hits,
// directly into HighBits (spec.md §4.2 Step 4); a prime
// >= SieveWindow strikes at most one bit per offset. High primes need no
// per-prime offset storage: Q^-1 mod p is computed on the fly.
func (e *Engine) sieveHighPrimes(table *primetable.Table, cand *sextuplet.Candidate, state *State) {
	for j := sextuplet.LowPrimeSplit; j < table.Len(); j++ {
		p := table.At(j)
		qModP := cand.Q.ModUint32(p)
		qinv := primetable.InverseMod(qModP, p)
		r := cand.XC().ModUint32(p)

		off := sixResidues(p, qinv, r)
		for _, k0 := range off {
			for k := uint64(k0); k < sextuplet.SieveWindow; k += uint64(p) {
				state.markHigh(k)
			}
		}
	}
}
