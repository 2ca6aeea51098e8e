package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// nonWord matches anything that is not an ASCII word character, whitespace
// or a Hangul syllable
var nonWord = regexp.MustCompile(`[^\w\s가-힣]`)

// KeywordFrequency counts keywords in text and returns the counts together
// with the TopKeywordCount most frequent keywords. Ties keep the order in
// which keywords first appeared.
func (a *Analyzer) KeywordFrequency(text string) (map[string]int, []string) {
	frequency := make(map[string]int)
	var order []string

	cleaned := nonWord.ReplaceAllString(text, " ")
	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) <= 1 || a.lex.IsStopWord(word) {
			continue
		}
		word = strings.ToLower(word)
		if _, seen := frequency[word]; !seen {
			order = append(order, word)
		}
		frequency[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return frequency[order[i]] > frequency[order[j]]
	})

	n := min(len(order), TopKeywordCount)
	top := make([]string, n)
	copy(top, order[:n])

	return frequency, top
}
