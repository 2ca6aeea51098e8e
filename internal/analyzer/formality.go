package analyzer

import "math"

// FormalityScore rates text from 0 (casual) to 100 (formal) by the share of
// formal pattern hits among all formal and casual hits. Text with no hits
// scores NeutralScore.
func (a *Analyzer) FormalityScore(text string) int {
	formal := countAll(text, a.lex.FormalPatterns)
	casual := countAll(text, a.lex.CasualPatterns)

	total := formal + casual
	if total == 0 {
		return NeutralScore
	}

	return int(math.Round(float64(formal) / float64(total) * 100))
}
