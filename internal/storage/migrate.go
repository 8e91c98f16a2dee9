package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateTables prepares the journal schema. Safe to run on every start.
func CreateTables(ctx context.Context, pool *pgxpool.Pool) error {
	op := "storage.CreateTables"

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id BIGSERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			entry_text TEXT NOT NULL,
			user_mood TEXT NOT NULL DEFAULT '',
			sentiment_label TEXT NOT NULL,
			sentiment_score DOUBLE PRECISION NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			word_count INTEGER NOT NULL,
			emotions JSONB NOT NULL DEFAULT '[]',
			keywords JSONB NOT NULL DEFAULT '[]'
		);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_created_at
			ON journal_entries (created_at);`,
	}

	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
