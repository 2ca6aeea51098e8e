package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/pthm/uxtone/internal/rules"
)

// Metrics contains batch statistics over a set of text items
type Metrics struct {
	TotalItems       int                    `json:"totalItems"`
	TotalChars       int                    `json:"totalChars"`
	TotalWords       int                    `json:"totalWords"`
	TotalSentences   int                    `json:"totalSentences"`
	ItemsWithMatches int                    `json:"itemsWithMatches"`
	RuleMatches      int                    `json:"ruleMatches"`
	MatchesByRule    map[string]int         `json:"matchesByRule"`
	MatchesByCat     map[rules.Category]int `json:"matchesByCategory"`
	LongestItem      int                    `json:"longestItem"`
}

// ComputeMetrics computes statistics for texts, counting matches of every
// rule against each text independently
func ComputeMetrics(texts []string, ruleSet []rules.Rule) *Metrics {
	m := &Metrics{
		MatchesByRule: make(map[string]int),
		MatchesByCat:  make(map[rules.Category]int),
	}

	for _, text := range texts {
		m.TotalItems++

		chars := utf8.RuneCountInString(text)
		m.TotalChars += chars
		if chars > m.LongestItem {
			m.LongestItem = chars
		}

		m.TotalWords += len(strings.Fields(text))
		m.TotalSentences += countSentences(text)

		matched := false
		for _, rule := range ruleSet {
			n := rule.Count(text)
			if n == 0 {
				continue
			}
			matched = true
			m.RuleMatches += n
			m.MatchesByRule[rule.Pattern] += n
			m.MatchesByCat[rule.Category] += n
		}
		if matched {
			m.ItemsWithMatches++
		}
	}

	return m
}
