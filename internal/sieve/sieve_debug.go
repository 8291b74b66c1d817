//go:build sieve_debug

package sieve

import (
	"log"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

// debugCheckInverses recomputes Q^-1 mod p for every low prime on the fly
// and logs any mismatch against table's precomputed value. It never
// affects release behaviour (spec.md §7's "Invariant-violation in debug
// mode only" error kind): callers only reach this path when built with
// the sieve_debug tag.
func debugCheckInverses(table *primetable.Table) {
	q := sextuplet.Primorial()
	mismatches := 0
	for j := sextuplet.FirstSieveIndex; j < sextuplet.LowPrimeSplit; j++ {
		p := table.At(j)
		want := table.InverseAt(j)
		got := primetable.InverseMod(q.ModUint32(p), p)
		if got != want {
			mismatches++
			log.Printf("[sieve_debug] inverse mismatch at j=%d p=%d: table=%d recomputed=%d", j, p, want, got)
		}
	}
	if mismatches == 0 {
		log.Printf("[sieve_debug] inverse cross-check passed for %d low primes", sextuplet.LowPrimeSplit-sextuplet.FirstSieveIndex)
	}
}
