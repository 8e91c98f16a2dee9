package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emotional_journal/internal/models"
)

type JournalStorage struct {
	pool *pgxpool.Pool
}

func NewJournalStorage(pool *pgxpool.Pool) *JournalStorage {
	return &JournalStorage{
		pool: pool,
	}
}

const entryColumns = `
	id, created_at, entry_text, user_mood, sentiment_label,
	sentiment_score, confidence, word_count, emotions, keywords
`

// CreateEntry inserts the entry and fills in its ID and CreatedAt.
func (js *JournalStorage) CreateEntry(ctx context.Context, entry *models.JournalEntry) error {
	op := "storage.CreateEntry"

	emotionsJSON, err := json.Marshal(entry.Emotions)
	if err != nil {
		return fmt.Errorf("%s: marshal emotions: %w", op, err)
	}
	keywordsJSON, err := json.Marshal(entry.Keywords)
	if err != nil {
		return fmt.Errorf("%s: marshal keywords: %w", op, err)
	}

	sqlQuery := `
	INSERT INTO journal_entries
	(entry_text, user_mood, sentiment_label, sentiment_score, confidence, word_count, emotions, keywords)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at;
	`

	err = js.pool.QueryRow(
		ctx,
		sqlQuery,
		entry.EntryText,
		entry.UserMood,
		entry.SentimentLabel,
		entry.SentimentScore,
		entry.Confidence,
		entry.WordCount,
		emotionsJSON,
		keywordsJSON,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetAllEntries returns every entry, newest first.
func (js *JournalStorage) GetAllEntries(ctx context.Context) ([]models.JournalEntry, error) {
	op := "storage.GetAllEntries"

	sqlQuery := `
	SELECT ` + entryColumns + `
	FROM journal_entries
	ORDER BY created_at DESC;
	`

	rows, err := js.pool.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanEntries(rows, op)
}

// GetRecentEntries returns the newest limit entries.
func (js *JournalStorage) GetRecentEntries(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	op := "storage.GetRecentEntries"

	sqlQuery := `
	SELECT ` + entryColumns + `
	FROM journal_entries
	ORDER BY created_at DESC
	LIMIT $1;
	`

	rows, err := js.pool.Query(ctx, sqlQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanEntries(rows, op)
}

// GetEntryByID returns nil when no entry has the given id.
func (js *JournalStorage) GetEntryByID(ctx context.Context, id int64) (*models.JournalEntry, error) {
	op := "storage.GetEntryByID"

	sqlQuery := `
	SELECT ` + entryColumns + `
	FROM journal_entries
	WHERE id = $1;
	`

	row := js.pool.QueryRow(ctx, sqlQuery, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &entry, nil
}

// DeleteEntry reports whether a row was actually removed. Deleting an
// unknown id is not an error.
func (js *JournalStorage) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	op := "storage.DeleteEntry"

	tag, err := js.pool.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// likeEscaper neutralizes ILIKE metacharacters so a keyword always
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(keyword string) string {
	return likeEscaper.Replace(keyword)
}

// SearchEntries matches keyword case-insensitively anywhere in the text.
func (js *JournalStorage) SearchEntries(ctx context.Context, keyword string) ([]models.JournalEntry, error) {
	op := "storage.SearchEntries"

	sqlQuery := `
	SELECT ` + entryColumns + `
	FROM journal_entries
	WHERE entry_text ILIKE '%' || $1 || '%'
	ORDER BY created_at DESC;
	`

	rows, err := js.pool.Query(ctx, sqlQuery, escapeLike(keyword))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanEntries(rows, op)
}

// GetEntriesByDateRange returns entries with from <= created_at <= to.
func (js *JournalStorage) GetEntriesByDateRange(ctx context.Context, from, to time.Time) ([]models.JournalEntry, error) {
	op := "storage.GetEntriesByDateRange"

	sqlQuery := `
	SELECT ` + entryColumns + `
	FROM journal_entries
	WHERE created_at BETWEEN $1 AND $2
	ORDER BY created_at DESC;
	`

	rows, err := js.pool.Query(ctx, sqlQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanEntries(rows, op)
}

func scanEntries(rows pgx.Rows, op string) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var entry models.JournalEntry
	var emotionsJSON, keywordsJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.EntryText,
		&entry.UserMood,
		&entry.SentimentLabel,
		&entry.SentimentScore,
		&entry.Confidence,
		&entry.WordCount,
		&emotionsJSON,
		&keywordsJSON,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.Emotions = []string{}
	entry.Keywords = []string{}

	if len(emotionsJSON) > 0 && string(emotionsJSON) != "null" {
		if err := json.Unmarshal(emotionsJSON, &entry.Emotions); err != nil {
			return models.JournalEntry{}, fmt.Errorf("unmarshal emotions: %w", err)
		}
	}
	if len(keywordsJSON) > 0 && string(keywordsJSON) != "null" {
		if err := json.Unmarshal(keywordsJSON, &entry.Keywords); err != nil {
			return models.JournalEntry{}, fmt.Errorf("unmarshal keywords: %w", err)
		}
	}

	return entry, nil
}
