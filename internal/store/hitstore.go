// Package store persists accepted hits for the demo HTTP surface. Like
// internal/telemetry, it is an optional observer of round results:
// spec.md §6 keeps the search core itself free of I/O.
package store

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rawblock/riecoin-sextuplet-engine/pkg/models"
)

// HitStore persists HitEvent and RoundSummary records to PostgreSQL.
type HitStore struct {
	pool *pgxpool.Pool
}

// Connect opens a pooled connection to connStr and verifies it with a
// ping.
func Connect(connStr string) (*HitStore, error) {
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	log.Println("[HitStore] connected to PostgreSQL")
	return &HitStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *HitStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema loads and executes internal/store/schema.sql.
func (s *HitStore) InitSchema() error {
	schemaBytes, err := os.ReadFile("internal/store/schema.sql")
	if err != nil {
		return fmt.Errorf("store: read schema: %w", err)
	}
	if _, err := s.pool.Exec(context.Background(), string(schemaBytes)); err != nil {
		return fmt.Errorf("store: apply schema: %w", err)
	}
	log.Println("[HitStore] schema initialized")
	return nil
}

// SaveHit persists one Fermat-test hit.
func (s *HitStore) SaveHit(ctx context.Context, ev models.HitEvent) error {
	const sql = `
		INSERT INTO search_hits (round_id, candidate, count, origin, detected_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.pool.Exec(ctx, sql, ev.RoundID, ev.Candidate, ev.Count, ev.Origin, ev.DetectedAt)
	if err != nil {
		return fmt.Errorf("store: save hit: %w", err)
	}
	return nil
}

// SaveRoundSummary persists one completed round's summary.
func (s *HitStore) SaveRoundSummary(ctx context.Context, rs models.RoundSummary) error {
	const sql = `
		INSERT INTO search_rounds (round_id, target_hash, hit_count, duration_ns, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (round_id) DO UPDATE
		SET hit_count = EXCLUDED.hit_count, duration_ns = EXCLUDED.duration_ns, completed_at = EXCLUDED.completed_at
	`
	_, err := s.pool.Exec(ctx, sql, rs.RoundID, rs.TargetHash, rs.Hits, rs.Duration.Nanoseconds(), rs.CompletedAt)
	if err != nil {
		return fmt.Errorf("store: save round summary: %w", err)
	}
	return nil
}

// RecentHits returns the most recent hits, newest first, limited to limit
// rows (defaulting to 50, capped at 500).
func (s *HitStore) RecentHits(ctx context.Context, limit int) ([]models.HitEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	const sql = `
		SELECT round_id, candidate, count, origin, detected_at
		FROM search_hits
		ORDER BY detected_at DESC
		LIMIT $1
	`
	rows, err := s.pool.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("store: recent hits: %w", err)
	}
	defer rows.Close()

	var hits []models.HitEvent
	for rows.Next() {
		var h models.HitEvent
		if err := rows.Scan(&h.RoundID, &h.Candidate, &h.Count, &h.Origin, &h.DetectedAt); err != nil {
			return nil, fmt.Errorf("store: scan hit: %w", err)
		}
		hits = append(hits, h)
	}
	if hits == nil {
		hits = []models.HitEvent{}
	}
	return hits, nil
}
