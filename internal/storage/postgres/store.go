package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ethToolBox/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS transcript_entries (
	session_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	line TEXT NOT NULL,
	failed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (session_id, seq)
)`

const insertEntry = `
	INSERT INTO transcript_entries (session_id, seq, line, failed, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (session_id, seq) DO NOTHING
`

// Store writes transcript entries to Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the transcript table when it is missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create transcript table: %w", err)
	}
	return nil
}

// PutEntryBatch inserts entries in one batch. Entries already stored for the
// same session and sequence number are left untouched.
func (s *Store) PutEntryBatch(ctx context.Context, entries []model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, entry := range entries {
		args, err := entryArgs(entry)
		if err != nil {
			return err
		}
		batch.Queue(insertEntry, args...)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for _, entry := range entries {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert entry %d: %w", entry.Seq, err)
		}
	}
	return nil
}

func entryArgs(entry model.LogEntry) ([]any, error) {
	at, err := time.Parse(time.RFC3339Nano, entry.At)
	if err != nil {
		return nil, fmt.Errorf("entry %d timestamp: %w", entry.Seq, err)
	}
	return []any{entry.SessionID, entry.Seq, entry.Line, entry.Failed, at}, nil
}
