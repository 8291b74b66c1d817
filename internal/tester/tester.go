// Package tester implements the concurrent Fermat-test pipeline (spec.md
// §4.3): it scans a section of sieve positions left unmarked by the
// sieve, reconstructs each surviving candidate, and subjects it to the
// mandatory short-circuit schedule of base-2 Fermat tests.
package tester

import (
	"github.com/rawblock/riecoin-sextuplet-engine/internal/bigint"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/roundctl"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sieve"
)

// cancellationGranularity is the coarsest interval, in sieve positions, at
// which the Tester is permitted to poll CheckRestart (spec.md §4.3).
const cancellationGranularity = 256

// Worker scans the half-open section [kLo, kHi) of state, Fermat-tests
// every position left clear by the sieve, and reports hits through cb. It
// returns once the section is exhausted or cb.CheckRestart reports true.
type Worker struct {
	cand *sextuplet.Candidate
	cb   roundctl.Callbacks
}

// NewWorker builds a Worker for one Tester section of one round.
func NewWorker(cand *sextuplet.Candidate, cb roundctl.Callbacks) *Worker {
	return &Worker{cand: cand, cb: cb}
}

// Run scans [kLo, kHi) of state.
func (w *Worker) Run(state *sieve.State, kLo, kHi uint64) {
	one := bigint.FromUint64(1)

	for k := kLo; k < kHi; k++ {
		if (k-kLo)%cancellationGranularity == 0 && w.cb.CheckRestart() {
			return
		}
		if !state.Clear(k) {
			continue
		}

		base := w.cand.XC().Add(w.cand.Q.MulUint64(k))
		if passed, count := testCandidate(base, one); passed {
			w.cb.ReportSuccess(sextuplet.Hit{
				Candidate: base.Clone(),
				Count:     count,
				Origin:    sextuplet.OriginCPU,
			})
		}
	}
}

// testCandidate applies the mandated short-circuit schedule to the six
// constellation offsets of base (spec.md §4.3 step 3), returning whether
// base is to be reported (o=0 passed and at least two of offsets 0, 4, 6,
// 10 passed) and how many offsets passed.
func testCandidate(base, one *bigint.Int) (hit bool, count int) {
	if !isFermatProbablePrime(base.AddUint64(sextuplet.Offsets[0]), one) {
		return false, 0
	}
	count = 1

	for _, idx := range []int{1, 2, 3} { // offsets 4, 6, 10
		if isFermatProbablePrime(base.AddUint64(sextuplet.Offsets[idx]), one) {
			count++
		}
	}
	if count < 2 {
		return false, count
	}

	for _, idx := range []int{4, 5} { // offsets 12, 16
		if isFermatProbablePrime(base.AddUint64(sextuplet.Offsets[idx]), one) {
			count++
		}
	}
	return true, count
}

// isFermatProbablePrime reports whether 2^(n-1) ≡ 1 (mod n).
func isFermatProbablePrime(n, one *bigint.Int) bool {
	exp := n.Sub(one)
	two := bigint.FromUint64(2)
	return bigint.Powm(two, exp, n).CmpUint64(1) == 0
}
