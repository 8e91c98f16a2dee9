package handlers

import (
	"reflect"
	"testing"
	"time"

	"emotional_journal/internal/models"
)

func TestExportRow(t *testing.T) {
	created := time.Date(2025, time.June, 10, 9, 15, 0, 0, time.UTC)
	entry := models.JournalEntry{
		ID:             42,
		CreatedAt:      created,
		EntryText:      "a calm morning in the garden",
		UserMood:       "😊",
		SentimentLabel: models.SentimentPositive,
		SentimentScore: 0.45,
		Confidence:     0.45,
		WordCount:      6,
		Emotions:       []string{"joy"},
		Keywords:       []string{"calm", "morning", "garden"},
	}

	got := exportRow(entry)
	want := []string{
		"42",
		"2025-06-10T09:15:00Z",
		"a calm morning in the garden",
		"😊",
		"POSITIVE",
		"0.45",
		"0.45",
		"6",
		`["joy"]`,
		`["calm","morning","garden"]`,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("exportRow = %v, want %v", got, want)
	}
	if len(got) != len(exportHeader) {
		t.Errorf("row has %d fields, header has %d", len(got), len(exportHeader))
	}
}

func TestExportRowEmptyLists(t *testing.T) {
	entry := models.JournalEntry{
		CreatedAt: time.Date(2025, time.June, 10, 9, 15, 0, 0, time.UTC),
		Emotions:  []string{},
		Keywords:  []string{},
	}

	got := exportRow(entry)
	if got[8] != "[]" || got[9] != "[]" {
		t.Errorf("empty lists should export as [], got %q and %q", got[8], got[9])
	}
}
