// Package roundctl holds the small capability record that a round's
// external collaborator (the out-of-scope pool/Stratum layer) injects into
// the search: a success-reporting callback and a cancellation poll
// (spec.md §6, "Cyclic/plugin callback shape"). Modelling both as methods
// on one interface keeps SearchCoordinator and Tester decoupled from
// whatever owns round lifecycle in a given deployment.
package roundctl

import "github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"

// Callbacks is the capability record injected into one search round.
type Callbacks interface {
	// ReportSuccess is called for every Fermat hit. The callee owns
	// hit.Candidate; the caller may mutate or discard its own copy
	// immediately afterward.
	ReportSuccess(hit sextuplet.Hit)

	// CheckRestart is polled while the sieve runs (by SearchCoordinator,
	// which then cancels the sieve's context), once between sieve and
	// testing, and by the Tester inside its inner loop; true means the
	// round is stale and must abort without further reports.
	CheckRestart() bool
}
