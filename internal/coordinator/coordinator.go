// Package coordinator implements SearchCoordinator (spec.md §4.4): it
// orchestrates one search round end to end, running the sieve, then
// fanning the Tester work out over errgroup.Group workers, and honouring
// the externally injected cancellation poll.
package coordinator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/roundctl"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sieve"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/tester"
)

// restartPollInterval is how often the background watcher re-checks the
// injected CheckRestart callback while a round's sieve is in flight.
const restartPollInterval = 500 * time.Microsecond

// section is a half-open [lo, hi) slice of [0, sextuplet.SieveWindow) a
// single Tester worker owns for a round.
type section struct{ lo, hi uint64 }

// SearchCoordinator drives repeated rounds against a shared, process-wide
// PrimeTable. It holds no per-round state itself; everything mutable for a
// round lives in the sieve.State allocated inside Run.
type SearchCoordinator struct {
	table  *primetable.Table
	engine *sieve.Engine

	// NumTesterWorkers is the number of equal sections the Tester fans
	// out over. spec.md §4.4 describes the reference's default
	// partition (two W/4 CPU sections plus one W/2 accelerator
	// section); with no accelerator back-end in this module, three
	// equal CPU sections is the closest honest default. Any positive
	// value is a valid partition per spec.md's "any disjoint partition
	// satisfying the invariant is acceptable".
	NumTesterWorkers int
}

// New builds a SearchCoordinator bound to table, the process-wide prime
// table built once at startup.
func New(table *primetable.Table) *SearchCoordinator {
	return &SearchCoordinator{
		table:            table,
		engine:           sieve.NewEngine(),
		NumTesterWorkers: 3,
	}
}

// Run executes one round for target, per spec.md §4.4:
//  1. builds the round's Candidate from target;
//  2. runs the sieve, aborting if cb.CheckRestart() fires during or after;
//  3. fans Tester workers out over disjoint sections of the sieve window;
//  4. joins them and returns.
//
// Run returns a non-nil error only for sieve setup failures (spec.md §7's
// init-fatal class); a cancelled round returns nil, since cancellation is
// the normal, user-visible interruption, not a failure.
func (c *SearchCoordinator) Run(parent context.Context, target sextuplet.Hash, cb roundctl.Callbacks) error {
	roundID := uuid.New()
	start := time.Now()
	log.Printf("[SearchCoordinator] round %s: starting", roundID)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	go c.watchRestart(ctx, cancel, cb)

	cand := sextuplet.NewCandidate(target)
	state := sieve.NewState()

	if err := c.engine.Sieve(ctx, c.table, cand, state); err != nil {
		if ctx.Err() != nil {
			log.Printf("[SearchCoordinator] round %s: aborted during sieve after %s", roundID, time.Since(start))
			return nil
		}
		return fmt.Errorf("coordinator: round %s: sieve: %w", roundID, err)
	}

	if cb.CheckRestart() {
		log.Printf("[SearchCoordinator] round %s: aborted after sieve, before testing", roundID)
		return nil
	}

	var g errgroup.Group
	for _, sec := range c.partition() {
		sec := sec
		g.Go(func() error {
			tester.NewWorker(cand, cb).Run(state, sec.lo, sec.hi)
			return nil
		})
	}
	// Tester workers never return an error (Fermat failures are the
	// normal, silently-discarded outcome per spec.md §4.4); Wait only
	// blocks until every section has finished.
	_ = g.Wait()

	log.Printf("[SearchCoordinator] round %s: complete in %s", roundID, time.Since(start))
	return nil
}

// watchRestart polls cb.CheckRestart at restartPollInterval and cancels
// ctx the first time it returns true, bridging the injected poll-based
// cancellation contract onto the sieve's context.Context-based one.
func (c *SearchCoordinator) watchRestart(ctx context.Context, cancel context.CancelFunc, cb roundctl.Callbacks) {
	ticker := time.NewTicker(restartPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if cb.CheckRestart() {
				cancel()
				return
			}
		}
	}
}

// partition splits [0, sextuplet.SieveWindow) into NumTesterWorkers
// equal-ish disjoint sections.
func (c *SearchCoordinator) partition() []section {
	n := c.NumTesterWorkers
	if n < 1 {
		n = 1
	}
	total := uint64(sextuplet.SieveWindow)
	size := total / uint64(n)

	sections := make([]section, 0, n)
	lo := uint64(0)
	for i := 0; i < n; i++ {
		hi := lo + size
		if i == n-1 {
			hi = total
		}
		sections = append(sections, section{lo: lo, hi: hi})
		lo = hi
	}
	return sections
}
