package storage

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"emotional_journal/internal/models"
)

// testPool connects to the database named by POSTGRES_DSN. Without the env
// var the integration tests are skipped.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set, skipping storage integration test")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect to db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(ctx); err != nil {
		t.Skipf("db not reachable: %v", err)
	}
	if err := CreateTables(ctx, pool); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	return pool
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"coffee", "coffee"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{"%_", `\%\_`},
	}

	for _, tt := range tests {
		if got := escapeLike(tt.keyword); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

func TestCreateEntryRoundTrip(t *testing.T) {
	js := NewJournalStorage(testPool(t))
	ctx := context.Background()

	entry := models.JournalEntry{
		EntryText:      "a calm morning in the garden with coffee and birdsong",
		UserMood:       "😊",
		SentimentLabel: models.SentimentPositive,
		SentimentScore: 0.45,
		Confidence:     0.45,
		WordCount:      10,
		Emotions:       []string{"joy", "gratitude"},
		Keywords:       []string{"calm", "morning", "garden", "coffee", "birdsong"},
	}

	if err := js.CreateEntry(ctx, &entry); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.ID == 0 || entry.CreatedAt.IsZero() {
		t.Fatalf("CreateEntry should fill id and created_at, got %d / %v", entry.ID, entry.CreatedAt)
	}
	t.Cleanup(func() { _, _ = js.DeleteEntry(ctx, entry.ID) })

	got, err := js.GetEntryByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetEntryByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetEntryByID returned nil for a stored entry")
	}

	if got.EntryText != entry.EntryText {
		t.Errorf("text = %q, want %q", got.EntryText, entry.EntryText)
	}
	if got.UserMood != entry.UserMood {
		t.Errorf("user mood = %q, want %q", got.UserMood, entry.UserMood)
	}
	if got.SentimentLabel != entry.SentimentLabel {
		t.Errorf("label = %q, want %q", got.SentimentLabel, entry.SentimentLabel)
	}
	if got.SentimentScore != entry.SentimentScore {
		t.Errorf("score = %v, want %v", got.SentimentScore, entry.SentimentScore)
	}
	if got.Confidence != entry.Confidence {
		t.Errorf("confidence = %v, want %v", got.Confidence, entry.Confidence)
	}
	if got.WordCount != entry.WordCount {
		t.Errorf("word count = %d, want %d", got.WordCount, entry.WordCount)
	}
	if !reflect.DeepEqual(got.Emotions, entry.Emotions) {
		t.Errorf("emotions = %v, want %v", got.Emotions, entry.Emotions)
	}
	if !reflect.DeepEqual(got.Keywords, entry.Keywords) {
		t.Errorf("keywords = %v, want %v", got.Keywords, entry.Keywords)
	}
}

func TestDeleteEntryMissingID(t *testing.T) {
	js := NewJournalStorage(testPool(t))
	ctx := context.Background()

	entry := models.JournalEntry{
		EntryText:      "an entry that must survive a bad delete request",
		SentimentLabel: models.SentimentNeutral,
		Emotions:       []string{"neutral"},
		Keywords:       []string{},
	}
	if err := js.CreateEntry(ctx, &entry); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	t.Cleanup(func() { _, _ = js.DeleteEntry(ctx, entry.ID) })

	before, err := js.GetAllEntries(ctx)
	if err != nil {
		t.Fatalf("GetAllEntries: %v", err)
	}

	deleted, err := js.DeleteEntry(ctx, int64(1)<<62)
	if err != nil {
		t.Fatalf("DeleteEntry on missing id returned error: %v", err)
	}
	if deleted {
		t.Error("DeleteEntry on missing id = true, want false")
	}

	after, err := js.GetAllEntries(ctx)
	if err != nil {
		t.Fatalf("GetAllEntries: %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("store changed: %d entries before, %d after", len(before), len(after))
	}

	if got, err := js.GetEntryByID(ctx, entry.ID); err != nil || got == nil {
		t.Errorf("seeded entry should still exist, got %v / %v", got, err)
	}
}
