package usecases

import (
	"regexp"
	"sort"
	"strings"
)

const topKeywords = 5

var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

// stopWords are common English function words excluded from keyword
// extraction. Kept as one literal set so tests can assert membership.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "my": {},
	"your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "am": {}, "me": {},
	"just": {}, "so": {}, "very": {}, "really": {}, "too": {}, "much": {},
	"more": {}, "most": {}, "some": {}, "any": {}, "all": {}, "both": {},
	"each": {}, "few": {}, "many": {}, "other": {}, "such": {}, "no": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "than": {}, "then": {},
	"there": {}, "when": {}, "where": {}, "why": {}, "how": {},
}

// ExtractKeywords returns up to 5 of the most frequent meaningful words in
// the text, most frequent first. Ties keep first-encountered order.
func ExtractKeywords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	order := make([]string, 0)

	for _, w := range words {
		if _, skip := stopWords[w]; skip {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topKeywords {
		order = order[:topKeywords]
	}
	return order
}
