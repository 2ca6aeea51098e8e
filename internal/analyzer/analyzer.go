package analyzer

import (
	"strings"

	"github.com/pthm/uxtone/internal/lexicon"
)

// Analyzer scores text against a lexicon. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New creates an analyzer over lex. A nil lex selects the built-in lexicon.
func New(lex *lexicon.Lexicon) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Analyzer{lex: lex}
}

// Lexicon returns the lexicon the analyzer scores against
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// AnalyzeText runs every heuristic over text
func (a *Analyzer) AnalyzeText(text string) *TextAnalysis {
	frequency, top := a.KeywordFrequency(text)

	return &TextAnalysis{
		SentenceType:     a.SentenceType(text),
		EmotionalTone:    a.EmotionalTone(text),
		KeywordFrequency: frequency,
		TopKeywords:      top,
		FormalityScore:   a.FormalityScore(text),
		ReadabilityScore: ReadabilityScore(text),
		EndingPatterns:   a.EndingPatterns(text),
	}
}

// countAll sums the literal, non-overlapping occurrences of every pattern.
// Patterns are counted independently, so overlapping patterns in the same
// list each contribute.
func countAll(text string, patterns []string) int {
	total := 0
	for _, p := range patterns {
		total += strings.Count(text, p)
	}
	return total
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
