package models

import (
	"time"
)

// Stats is the full dashboard summary computed over every stored entry.
type Stats struct {
	TotalEntries   int             `json:"total_entries"`
	CurrentStreak  int             `json:"current_streak"`
	LongestStreak  int             `json:"longest_streak"`
	AvgMood7d      float64         `json:"avg_mood_7d"`
	AvgMood30d     float64         `json:"avg_mood_30d"`
	Consistency30d float64         `json:"consistency_30d"`
	TopEmotion     string          `json:"top_emotion"`
	SentimentDist  map[string]int  `json:"sentiment_distribution"`
	EmotionDist    []EmotionCount  `json:"emotion_distribution"`
	MoodByDay      []DayOfWeekMood `json:"mood_by_day_of_week"`
}

type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// DayOfWeekMood is one Monday..Sunday bucket. HasData is false when no
// entry fell on that weekday, in which case Average carries no meaning.
type DayOfWeekMood struct {
	Day     string  `json:"day"`
	Average float64 `json:"average"`
	HasData bool    `json:"has_data"`
}

// WeeklySummary covers the trailing 7 days.
type WeeklySummary struct {
	NumEntries  int      `json:"num_entries"`
	AvgMood     float64  `json:"avg_mood"`
	MoodWord    string   `json:"mood_word"`
	TopKeywords []string `json:"top_keywords"`
}

// EmotionalJourney points at the best and worst scored entries.
type EmotionalJourney struct {
	HighestDate  time.Time `json:"highest_date"`
	HighestScore float64   `json:"highest_score"`
	HighestText  string    `json:"highest_text"`
	LowestDate   time.Time `json:"lowest_date"`
	LowestScore  float64   `json:"lowest_score"`
	LowestText   string    `json:"lowest_text"`
}
