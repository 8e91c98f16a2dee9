package usecases

import "errors"

var (
	errNoScorer    = errors.New("no polarity scorer configured")
	errScorerPanic = errors.New("polarity scorer panicked")
)
