package main

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/store"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/telemetry"
	"github.com/rawblock/riecoin-sextuplet-engine/pkg/models"
)

// demoCallbacks implements roundctl.Callbacks for the demo binary: every
// hit is broadcast over the websocket hub and, if a store is configured,
// persisted; restart is a flag the poller flips between rounds and the
// HTTP layer may flip early via /restart.
type demoCallbacks struct {
	hub   *telemetry.Hub
	store *store.HitStore // nil disables persistence

	restart atomic.Bool
	roundID string
}

func newDemoCallbacks(hub *telemetry.Hub, st *store.HitStore) *demoCallbacks {
	return &demoCallbacks{hub: hub, store: st}
}

func (c *demoCallbacks) ReportSuccess(hit sextuplet.Hit) {
	ev := models.HitEvent{
		RoundID:    c.roundID,
		Candidate:  hit.Candidate.String(),
		Count:      hit.Count,
		Origin:     hit.Origin.String(),
		DetectedAt: time.Now(),
	}
	c.hub.BroadcastJSON(ev)

	if c.store != nil {
		go func() {
			if err := c.store.SaveHit(context.Background(), ev); err != nil {
				log.Printf("[demoCallbacks] failed to persist hit: %v", err)
			}
		}()
	}
}

func (c *demoCallbacks) CheckRestart() bool {
	return c.restart.Load()
}

func newRoundID() string {
	return uuid.New().String()
}
