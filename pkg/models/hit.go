// Package models holds the JSON-facing wire types exchanged with the
// optional demo HTTP/websocket surface (cmd/searchd). The search core
// itself never imports this package: it talks in internal/sextuplet and
// internal/bigint types only (spec.md §6).
package models

import "time"

// HitEvent is the wire representation of one Fermat-test hit, broadcast
// to connected dashboard clients and persisted by internal/store.
type HitEvent struct {
	RoundID    string    `json:"roundId"`
	Candidate  string    `json:"candidate"` // decimal
	Count      int       `json:"count"`
	Origin     string    `json:"origin"`
	DetectedAt time.Time `json:"detectedAt"`
}

// RoundSummary is the wire representation of one completed round, the
// record internal/store.HitStore.SaveRoundSummary persists.
type RoundSummary struct {
	RoundID     string        `json:"roundId"`
	TargetHash  string        `json:"targetHash"`
	Hits        int           `json:"hits"`
	Duration    time.Duration `json:"durationNs"`
	CompletedAt time.Time     `json:"completedAt"`
}
