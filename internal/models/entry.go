package models

import (
	"time"
)

// Sentiment labels assigned by the analyzer.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

type JournalEntry struct {
	ID             int64     `json:"id" db:"id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	EntryText      string    `json:"entry_text" db:"entry_text"`
	UserMood       string    `json:"user_mood,omitempty" db:"user_mood"`
	SentimentLabel string    `json:"sentiment_label" db:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score" db:"sentiment_score"`
	Confidence     float64   `json:"confidence" db:"confidence"`
	WordCount      int       `json:"word_count" db:"word_count"`
	Emotions       []string  `json:"emotions" db:"emotions"`
	Keywords       []string  `json:"keywords" db:"keywords"`
}
