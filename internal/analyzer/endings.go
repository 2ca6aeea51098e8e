package analyzer

import "strings"

// EndingPatterns counts each lexicon ending pattern in text. Only patterns
// that occur are present in the result.
func (a *Analyzer) EndingPatterns(text string) map[string]int {
	counts := make(map[string]int)
	for _, p := range a.lex.EndingPatterns {
		if n := strings.Count(text, p); n > 0 {
			counts[p] = n
		}
	}
	return counts
}
