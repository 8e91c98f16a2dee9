package usecases

import (
	"sort"
	"time"

	"emotional_journal/internal/models"
)

const (
	consistencyWindowDays = 30
	topDistEmotions       = 5
	topWeeklyKeywords     = 3
)

// MoodWordNone marks a week with no entries, so consumers can tell it
// apart from a genuinely mixed week.
const MoodWordNone = "no entries"

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ComputeStats builds the dashboard summary from the full entry history.
// All calendar-day math runs in the local timezone of now.
func ComputeStats(entries []models.JournalEntry, now time.Time) models.Stats {
	stats := models.Stats{
		SentimentDist: map[string]int{},
		EmotionDist:   []models.EmotionCount{},
		MoodByDay:     emptyMoodByDay(),
	}

	if len(entries) == 0 {
		return stats
	}

	stats.TotalEntries = len(entries)
	stats.CurrentStreak, stats.LongestStreak = calculateStreaks(entries, now)
	stats.AvgMood7d = averageMoodSince(entries, now.AddDate(0, 0, -7))
	stats.AvgMood30d = averageMoodSince(entries, now.AddDate(0, 0, -30))
	stats.Consistency30d = consistency(entries, now)
	stats.TopEmotion = topEmotion(entries)
	stats.SentimentDist = sentimentDistribution(entries)
	stats.EmotionDist = emotionDistribution(entries)
	stats.MoodByDay = moodByDayOfWeek(entries)

	return stats
}

// ComputeWeeklySummary describes the trailing 7 days of journaling.
func ComputeWeeklySummary(entries []models.JournalEntry, now time.Time) models.WeeklySummary {
	cutoff := now.AddDate(0, 0, -7)

	var sum float64
	var count int
	keywordCounts := make(map[string]int)
	keywordOrder := make([]string, 0)

	for _, e := range entries {
		if e.CreatedAt.Before(cutoff) {
			continue
		}
		count++
		sum += e.SentimentScore
		for _, kw := range e.Keywords {
			if _, seen := keywordCounts[kw]; !seen {
				keywordOrder = append(keywordOrder, kw)
			}
			keywordCounts[kw]++
		}
	}

	summary := models.WeeklySummary{NumEntries: count, TopKeywords: []string{}}
	if count == 0 {
		summary.MoodWord = MoodWordNone
		return summary
	}

	summary.AvgMood = sum / float64(count)
	switch {
	case summary.AvgMood > 0.3:
		summary.MoodWord = "positive"
	case summary.AvgMood < -0.3:
		summary.MoodWord = "negative"
	default:
		summary.MoodWord = "mixed"
	}

	sort.SliceStable(keywordOrder, func(i, j int) bool {
		return keywordCounts[keywordOrder[i]] > keywordCounts[keywordOrder[j]]
	})
	if len(keywordOrder) > topWeeklyKeywords {
		keywordOrder = keywordOrder[:topWeeklyKeywords]
	}
	summary.TopKeywords = keywordOrder

	return summary
}

// ComputeEmotionalJourney finds the highest and lowest scored entries.
// Returns nil with fewer than two entries.
func ComputeEmotionalJourney(entries []models.JournalEntry) *models.EmotionalJourney {
	if len(entries) < 2 {
		return nil
	}

	highest, lowest := entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.SentimentScore > highest.SentimentScore {
			highest = e
		}
		if e.SentimentScore < lowest.SentimentScore {
			lowest = e
		}
	}

	return &models.EmotionalJourney{
		HighestDate:  highest.CreatedAt,
		HighestScore: highest.SentimentScore,
		HighestText:  highest.EntryText,
		LowestDate:   lowest.CreatedAt,
		LowestScore:  lowest.SentimentScore,
		LowestText:   lowest.EntryText,
	}
}

// calculateStreaks returns (current, longest). A day counts once no matter
// how many entries it has; the current streak must reach today or yesterday.
func calculateStreaks(entries []models.JournalEntry, now time.Time) (int, int) {
	dates := distinctDatesDesc(entries)
	if len(dates) == 0 {
		return 0, 0
	}

	today := dateOf(now)
	yesterday := today.AddDate(0, 0, -1)

	current := 0
	if dates[0].Equal(today) || dates[0].Equal(yesterday) {
		current = 1
		for i := 0; i < len(dates)-1; i++ {
			if dates[i].AddDate(0, 0, -1).Equal(dates[i+1]) {
				current++
			} else {
				break
			}
		}
	}

	longest := 1
	run := 1
	for i := 0; i < len(dates)-1; i++ {
		if dates[i].AddDate(0, 0, -1).Equal(dates[i+1]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return current, longest
}

func averageMoodSince(entries []models.JournalEntry, cutoff time.Time) float64 {
	var sum float64
	var count int
	for _, e := range entries {
		if e.CreatedAt.Before(cutoff) {
			continue
		}
		sum += e.SentimentScore
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func consistency(entries []models.JournalEntry, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -consistencyWindowDays)

	days := make(map[time.Time]struct{})
	for _, e := range entries {
		if e.CreatedAt.Before(cutoff) {
			continue
		}
		days[dateOf(e.CreatedAt)] = struct{}{}
	}

	return float64(len(days)) / float64(consistencyWindowDays) * 100
}

// topEmotion picks the single most frequent emotion tag over all entries.
// Ties break by lexicon declaration order, then by tag name.
func topEmotion(entries []models.JournalEntry) string {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, em := range e.Emotions {
			counts[em]++
		}
	}
	if len(counts) == 0 {
		return ""
	}

	best := ""
	bestCount := 0
	for tag, count := range counts {
		switch {
		case count > bestCount:
			best, bestCount = tag, count
		case count == bestCount && better(tag, best):
			best = tag
		}
	}
	return best
}

func better(a, b string) bool {
	ra, rb := emotionRank(a), emotionRank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}

func sentimentDistribution(entries []models.JournalEntry) map[string]int {
	dist := make(map[string]int)
	for _, e := range entries {
		dist[e.SentimentLabel]++
	}
	return dist
}

// emotionDistribution returns the top 5 emotions, most frequent first.
func emotionDistribution(entries []models.JournalEntry) []models.EmotionCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, em := range e.Emotions {
			counts[em]++
		}
	}

	dist := make([]models.EmotionCount, 0, len(counts))
	for tag, count := range counts {
		dist = append(dist, models.EmotionCount{Emotion: tag, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return better(dist[i].Emotion, dist[j].Emotion)
	})

	if len(dist) > topDistEmotions {
		dist = dist[:topDistEmotions]
	}
	return dist
}

func moodByDayOfWeek(entries []models.JournalEntry) []models.DayOfWeekMood {
	var sums [7]float64
	var counts [7]int

	for _, e := range entries {
		idx := mondayIndex(e.CreatedAt.Local().Weekday())
		sums[idx] += e.SentimentScore
		counts[idx]++
	}

	buckets := emptyMoodByDay()
	for i := range buckets {
		if counts[i] > 0 {
			buckets[i].Average = sums[i] / float64(counts[i])
			buckets[i].HasData = true
		}
	}
	return buckets
}

func emptyMoodByDay() []models.DayOfWeekMood {
	buckets := make([]models.DayOfWeekMood, 7)
	for i, name := range dayNames {
		buckets[i] = models.DayOfWeekMood{Day: name}
	}
	return buckets
}

// mondayIndex maps time.Weekday (Sunday = 0) onto Monday-first buckets.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// distinctDatesDesc dedupes entry timestamps to local calendar dates,
// newest first.
func distinctDatesDesc(entries []models.JournalEntry) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d := dateOf(e.CreatedAt)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

func dateOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
