package main

import (
	"context"
	"crypto/rand"
	"log"
	"time"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/coordinator"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

// roundInterval is how often the demo poller hands the coordinator a new
// target hash. A real deployment takes targets from the out-of-scope
// Stratum job feed instead (spec.md §1); this poller exists only so the
// demo binary has something to search against.
const roundInterval = 5 * time.Second

// Poller drives repeated SearchCoordinator rounds against freshly
// generated target hashes, standing in for the pool/Stratum layer this
// module treats as an external collaborator.
type Poller struct {
	coord *coordinator.SearchCoordinator
	cb    *demoCallbacks
}

// NewPoller builds a Poller bound to coord, reporting through cb.
func NewPoller(coord *coordinator.SearchCoordinator, cb *demoCallbacks) *Poller {
	return &Poller{coord: coord, cb: cb}
}

// Run loops until ctx is cancelled, starting each new round roundInterval
// after the previous one finishes.
func (p *Poller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Println("[Poller] stopping")
			return
		default:
		}

		target, err := randomTargetHash()
		if err != nil {
			log.Printf("[Poller] failed to generate target hash: %v", err)
			return
		}

		p.cb.restart.Store(false)
		p.cb.roundID = newRoundID()
		log.Printf("[Poller] starting round %s for target %x", p.cb.roundID, target[:8])

		if err := p.coord.Run(ctx, target, p.cb); err != nil {
			log.Printf("[Poller] round error: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(roundInterval):
		}
	}
}

// RequestRestart marks the in-flight round (if any) as stale.
func (p *Poller) RequestRestart() {
	p.cb.restart.Store(true)
}

func randomTargetHash() (sextuplet.Hash, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return sextuplet.Hash{}, err
	}
	return sextuplet.HashFromBytes(b), nil
}
