// Package sextuplet holds the Riecoin consensus-fixed constants and the
// candidate/hit types that flow between the prime table, the sieve and the
// Fermat-test pipeline.
package sextuplet

import "github.com/rawblock/riecoin-sextuplet-engine/internal/bigint"

// Offsets is the fixed constellation pattern: six shifted values that must
// all be simultaneously (probable-)prime for a hit.
var Offsets = [6]uint64{0, 4, 6, 10, 12, 16}

// AlignConst is the shift applied after the primorial-aligned base so the
// constellation has no trivial small-factor obstruction (spec.md §3).
const AlignConst = 16057

// qGenMultiplicands are the eight 32-bit factors whose product is the
// primorial Q = 2*3*5*...*167. Reproduced verbatim from the reference
// miner (original_source/xptMiner/rh_riecoin.c) so every implementation
// derives the identical ~220-bit constant.
var qGenMultiplicands = [8]uint64{
	223092870, 2756205443, 907383479, 4132280413,
	121330189, 257557397, 490995677, 27221,
}

// FirstSieveIndex is the index of the first prime used for sieving (primes
// at or below 167 are absorbed into Q and never sieved). The prime table
// starts at 3, so index 38 holds 173, the first prime above 167.
const FirstSieveIndex = 38

// LowPrimeSplit is the boundary between "low primes" (sieved via the
// per-prime offsets array) and "high primes" (sieved via direct bit writes
// computed per prime, with no stored offsets).
const LowPrimeSplit = 3343

// SegmentLength is the per-segment stride used while sieving low primes.
const SegmentLength = 2_400_000

// SieveWindow is the total number of sieve positions scanned per round.
const SieveWindow = 8 * SegmentLength

// MaxSievePrime is the largest prime the sieve strikes. It must land just
// past a multiple of SieveWindow, matching the reference miner's
// MAX_SIEVE_PRIME constant.
const MaxSievePrime = 962_696_017

// PrimeTableSize is the number of odd primes (excluding 2) up to and
// including MaxSievePrime, matching the reference miner's PRIME_TABLE_SIZE.
const PrimeTableSize = 49_045_812

// Primorial returns Q = 2*3*5*...*167 as the product of the eight
// consensus-fixed multiplicands.
func Primorial() *bigint.Int {
	q := bigint.FromUint64(qGenMultiplicands[0])
	for _, m := range qGenMultiplicands[1:] {
		q = q.MulUint64(m)
	}
	return q
}

// TrailingBits is the exponent z used to place the 256-bit hash into the
// search-space base B = 2^(z+264) + h*2^z (spec.md §3). A full pool-mining
// client derives z from the job's target difficulty; that derivation is
// part of the out-of-scope Stratum protocol (spec.md §1), so this engine
// fixes z to a representative value satisfying the z >= 256 invariant.
const TrailingBits = 256
