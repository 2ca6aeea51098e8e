package analyzer

import (
	"math"
	"strings"
	"unicode/utf8"
)

// ReadabilityScore rates text from 0 (hard) to 100 (easy).
//
//	complexity = 0.5*wordsPerSentence + 2*charsPerWord
//	score      = clamp(100 - 5*complexity, 0, 100)
//
// Characters are counted in runes. Text without sentences or words scores
// NeutralScore.
func ReadabilityScore(text string) int {
	sentences := countSentences(text)
	words := strings.Fields(text)

	if sentences == 0 || len(words) == 0 {
		return NeutralScore
	}

	chars := 0
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	charsPerWord := float64(chars) / float64(len(words))

	complexity := wordsPerSentence*0.5 + charsPerWord*2
	score := math.Max(0, math.Min(100, 100-complexity*5))

	return int(math.Round(score))
}

// countSentences counts the non-blank fragments between ".", "!" and "?"
func countSentences(text string) int {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	n := 0
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}
