package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps snapshots in a single table keyed by session ID.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (ps *PostgresStore) Close() {
	if ps.pool != nil {
		ps.pool.Close()
	}
}

// EnsureSchema creates the snapshots table when it does not exist yet.
func (ps *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := ps.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS session_snapshots (
		   session_id TEXT PRIMARY KEY,
		   version    INTEGER NOT NULL,
		   payload    JSONB NOT NULL,
		   updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		 )`,
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// Load fetches and validates the session's snapshot row.
func (ps *PostgresStore) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	var raw []byte
	err := ps.pool.QueryRow(ctx,
		`SELECT payload FROM session_snapshots WHERE session_id = $1`,
		sessionID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return DecodeSnapshot(raw)
}

// Save upserts the snapshot row for the session.
func (ps *PostgresStore) Save(ctx context.Context, sessionID string, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = ps.pool.Exec(ctx,
		`INSERT INTO session_snapshots (session_id, version, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id) DO UPDATE SET version = $2, payload = $3, updated_at = NOW()`,
		sessionID, snap.Version, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Delete removes the session's snapshot row.
func (ps *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	_, err := ps.pool.Exec(ctx,
		`DELETE FROM session_snapshots WHERE session_id = $1`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
