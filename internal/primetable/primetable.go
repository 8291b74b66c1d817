// Package primetable builds the process-wide table of odd primes and their
// primorial-inverse residues that the sieve needs. It is built once at
// process start (spec.md §4.1) and shared read-only for the process
// lifetime.
package primetable

import (
	"fmt"
	"log"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

// wheelPeriodBits is the bit-period of the small-prime wheel: n = 2i+1 is
// divisible by one of {3,5,7,11,13} with period 15015 in i (since
// gcd(2,15015)=1, the map n->i is a bijection mod 2*15015).
const wheelPeriodBits = 15015

// wheelBasePrimes is how many of the initial low primes (3,5,7,11,13) are
// folded into the wheel instead of swept individually.
const wheelBasePrimes = 5

// Table is the ordered list of odd primes below sextuplet.MaxSievePrime and
// the parallel table of Q^-1 mod p_j residues for the low-prime range.
type Table struct {
	// Primes is strictly increasing; Primes[len(Primes)-1] ==
	// sextuplet.MaxSievePrime.
	Primes []uint32
	// Inverses[j] = Q^-1 mod Primes[j], populated only for j in
	// [sextuplet.FirstSieveIndex, sextuplet.LowPrimeSplit).
	Inverses []uint32
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.Primes) }

// At returns the j-th prime.
func (t *Table) At(j int) uint32 { return t.Primes[j] }

// InverseAt returns Q^-1 mod Primes[j] for a low-prime index j.
func (t *Table) InverseAt(j int) uint32 { return t.Inverses[j] }

// Build generates the table. It is a process-startup step: on an invariant
// mismatch or a missing inverse it returns an error, and callers are
// expected to treat that as init-fatal (spec.md §7) and terminate the
// process via log.Fatalf rather than attempt a search with a broken table.
func Build() (*Table, error) {
	log.Printf("[PrimeTable] generating first %d primes by trial division", sextuplet.LowPrimeSplit)
	lowPrimes, err := trialDivisionPrimes(sextuplet.LowPrimeSplit)
	if err != nil {
		return nil, fmt.Errorf("primetable: trial division: %w", err)
	}

	log.Printf("[PrimeTable] wheel-sieving odd numbers up to %d", sextuplet.MaxSievePrime)
	primes, err := wheelSieve(lowPrimes)
	if err != nil {
		return nil, fmt.Errorf("primetable: wheel sieve: %w", err)
	}

	if got := primes[len(primes)-1]; got != sextuplet.MaxSievePrime {
		return nil, fmt.Errorf("primetable: invariant violated: primes[N-1] = %d, want %d", got, sextuplet.MaxSievePrime)
	}

	inverses := make([]uint32, sextuplet.LowPrimeSplit)
	q := sextuplet.Primorial()
	for j := sextuplet.FirstSieveIndex; j < sextuplet.LowPrimeSplit; j++ {
		p := primes[j]
		qModP := q.ModUint32(p)
		inv := InverseMod(qModP, p)
		if inv == 0 {
			return nil, fmt.Errorf("primetable: no inverse of Q mod p_%d=%d (Q mod p=%d)", j, p, qModP)
		}
		inverses[j] = inv
	}

	log.Printf("[PrimeTable] built %d primes, max prime %d", len(primes), primes[len(primes)-1])
	return &Table{Primes: primes, Inverses: inverses}, nil
}

// trialDivisionPrimes generates the first count odd primes by trial
// division against previously found primes up to floor(sqrt(p)).
func trialDivisionPrimes(count int) ([]uint32, error) {
	if count < 2 {
		return nil, fmt.Errorf("count must be >= 2, got %d", count)
	}
	primes := make([]uint32, 0, count)
	primes = append(primes, 3, 5)

	p := uint32(7)
	s := uint32(3)
	for len(primes) < count {
		isPrime := true
		for _, q := range primes {
			if q > s {
				break
			}
			if p%q == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, p)
		}
		p += 2
		if s*s < p {
			s++
		}
	}
	return primes, nil
}

// wheelSieve extends lowPrimes (the first sextuplet.LowPrimeSplit odd
// primes) into the full prime table up to sextuplet.MaxSievePrime, using a
// wheel of radius 15015 = 3*5*7*11*13 to pre-mark small-factor composites
// before striking the remaining low primes individually.
func wheelSieve(lowPrimes []uint32) ([]uint32, error) {
	maxIdx := int(sextuplet.MaxSievePrime-1) / 2 // bit index of MaxSievePrime itself
	wordCount := maxIdx/32 + 1

	wheel := buildWheelMask(lowPrimes[:wheelBasePrimes])

	bitmap := make([]uint32, wordCount)
	for i := 0; i <= maxIdx; i++ {
		if wheelBit(wheel, i) {
			bitmap[i/32] |= 1 << uint(i%32)
		}
	}

	for _, p := range lowPrimes[wheelBasePrimes:] {
		p64 := uint64(p)
		start := (p64*p64 - 1) / 2
		for k := start; k <= uint64(maxIdx); k += p64 {
			bitmap[k/32] |= 1 << uint(k%32)
		}
	}

	last := lowPrimes[len(lowPrimes)-1]
	startIdx := (uint64(last) + 1) / 2 // index just past the last known low prime

	primes := make([]uint32, len(lowPrimes), sextuplet.PrimeTableSize)
	copy(primes, lowPrimes)

	for idx := startIdx; idx <= uint64(maxIdx); idx++ {
		if bitmap[idx/32]&(1<<uint(idx%32)) == 0 {
			primes = append(primes, uint32(2*idx+1))
		}
	}
	return primes, nil
}

// buildWheelMask precomputes a wheelPeriodBits-bit mask where bit i is set
// iff 2i+1 is divisible by one of the given base primes (3, 5, 7, 11, 13).
func buildWheelMask(basePrimes []uint32) []uint32 {
	words := wheelPeriodBits/32 + 1
	mask := make([]uint32, words)
	for _, p := range basePrimes {
		offset := p >> 1 // index of n=p itself
		for offset < wheelPeriodBits {
			mask[offset/32] |= 1 << uint(offset%32)
			offset += p
		}
	}
	return mask
}

func wheelBit(mask []uint32, i int) bool {
	bit := i % wheelPeriodBits
	return mask[bit/32]&(1<<uint(bit%32)) != 0
}

// InverseMod returns t such that a*t ≡ 1 (mod m), via the extended
// Euclidean algorithm, or 0 if a and m share a common factor. a and m must
// fit in 31 bits. Exported for the high-prime sieve path (spec.md §4.2
// Step 4), which computes Q^-1 mod p on the fly instead of from a
// precomputed table.
func InverseMod(a, m uint32) uint32 {
	t, newT := int64(0), int64(1)
	r, newR := int64(m), int64(a)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r > 1 {
		return 0
	}
	if t < 0 {
		t += int64(m)
	}
	return uint32(t)
}
