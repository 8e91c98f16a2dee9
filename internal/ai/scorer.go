package ai

import (
	"fmt"

	"github.com/jonreiter/govader"
)

// PolarityScorer rates text polarity on a [-1, 1] scale.
type PolarityScorer interface {
	Compound(text string) (float64, error)
}

// VaderScorer wraps the VADER engine. The engine build is the expensive
// part, so one VaderScorer is created in main and shared by all requests.
type VaderScorer struct {
	engine *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{engine: govader.NewSentimentIntensityAnalyzer()}
}

func (vs *VaderScorer) Compound(text string) (float64, error) {
	if vs.engine == nil {
		return 0, fmt.Errorf("vader engine is not initialized")
	}
	scores := vs.engine.PolarityScores(text)
	return scores.Compound, nil
}
