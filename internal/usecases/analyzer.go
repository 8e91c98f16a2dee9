package usecases

import (
	"math"

	"emotional_journal/internal/ai"
	"emotional_journal/internal/logger"
	"emotional_journal/internal/models"
)

// Label thresholds on the [-1, 1] polarity scale.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// AnalysisResult is everything the analyzer derives from one entry text.
type AnalysisResult struct {
	Label      string   `json:"label"`
	Score      float64  `json:"score"`
	Confidence float64  `json:"confidence"`
	Emotions   []string `json:"emotions"`
	Keywords   []string `json:"keywords"`
}

type Analyzer struct {
	scorer ai.PolarityScorer
	log    *logger.Logger
}

func NewAnalyzer(scorer ai.PolarityScorer, log *logger.Logger) *Analyzer {
	return &Analyzer{scorer: scorer, log: log}
}

// Analyze scores the text and always returns a complete result. A failing
// scorer degrades to NEUTRAL/0.0/0.0 instead of surfacing an error; emotion
// and keyword detection still run on the fallback path.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	op := "usecases.Analyze"

	score, err := a.score(text)
	if err != nil {
		a.log.Error("polarity scorer failed, using neutral fallback", "op", op, "error", err)
		score = 0.0
	}

	var label string
	switch {
	case score > positiveThreshold:
		label = models.SentimentPositive
	case score < negativeThreshold:
		label = models.SentimentNegative
	default:
		label = models.SentimentNeutral
	}

	return AnalysisResult{
		Label:      label,
		Score:      score,
		Confidence: math.Abs(score),
		Emotions:   DetectEmotions(text, label),
		Keywords:   ExtractKeywords(text),
	}
}

func (a *Analyzer) score(text string) (score float64, err error) {
	if a.scorer == nil {
		return 0, errNoScorer
	}
	// The scorer is external code; a panic there must not kill the request.
	defer func() {
		if r := recover(); r != nil {
			score = 0
			err = errScorerPanic
		}
	}()
	return a.scorer.Compound(text)
}
