package usecases

import (
	"sort"
	"strings"

	"emotional_journal/internal/models"
)

const topEmotions = 3

// EmotionNeutral is the fallback tag for entries with a neutral sentiment
// and no lexicon hits.
const EmotionNeutral = "neutral"

type emotionEntry struct {
	Tag      string
	Keywords []string
}

// emotionLexicon maps each emotion tag to the phrases that signal it.
// Declaration order doubles as the tie-break order everywhere emotions are
// ranked, so the table must stay a slice, not a map.
var emotionLexicon = []emotionEntry{
	{"joy", []string{"happy", "joy", "excited", "wonderful", "amazing", "great", "love", "fantastic", "delighted", "thrilled"}},
	{"sadness", []string{"sad", "depressed", "unhappy", "down", "crying", "tears", "lonely", "miss", "disappointed", "heartbroken"}},
	{"anger", []string{"angry", "mad", "furious", "annoyed", "frustrated", "irritated", "hate", "rage", "outraged"}},
	{"fear", []string{"afraid", "scared", "anxious", "worried", "nervous", "panic", "terrified", "frightened"}},
	{"surprise", []string{"surprised", "shocked", "amazed", "unexpected", "sudden", "wow", "astonished"}},
	{"gratitude", []string{"grateful", "thankful", "appreciate", "blessed", "lucky", "fortunate", "thanks"}},
	{"hope", []string{"hope", "optimistic", "looking forward", "excited about", "can't wait", "hopeful"}},
	{"stress", []string{"stressed", "overwhelmed", "pressure", "burden", "exhausted", "tired", "burned out"}},
}

// emotionRank reports an emotion's position in the lexicon; unknown tags
// (the neutral fallback) order after every lexicon tag.
func emotionRank(tag string) int {
	for i, e := range emotionLexicon {
		if e.Tag == tag {
			return i
		}
	}
	return len(emotionLexicon)
}

// DetectEmotions ranks emotions by how many of their phrases occur in the
// text (plain substring match over the lowercased text, so "overwhelmed"
// counts even mid-word). At most 3 tags come back and never zero: with no
// hits at all the sentiment label picks a single fallback tag.
func DetectEmotions(text string, sentimentLabel string) []string {
	textLower := strings.ToLower(text)

	type hit struct {
		tag   string
		count int
	}
	hits := make([]hit, 0, len(emotionLexicon))

	for _, e := range emotionLexicon {
		count := 0
		for _, kw := range e.Keywords {
			if strings.Contains(textLower, kw) {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, hit{tag: e.Tag, count: count})
		}
	}

	if len(hits) == 0 {
		switch sentimentLabel {
		case models.SentimentPositive:
			return []string{"joy"}
		case models.SentimentNegative:
			return []string{"sadness"}
		default:
			return []string{EmotionNeutral}
		}
	}

	// Stable sort keeps lexicon declaration order between equal counts.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].count > hits[j].count
	})

	if len(hits) > topEmotions {
		hits = hits[:topEmotions]
	}

	detected := make([]string, len(hits))
	for i, h := range hits {
		detected[i] = h.tag
	}
	return detected
}
