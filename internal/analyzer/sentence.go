package analyzer

import "strings"

// SentenceType classifies text by the first matching signal: a question
// mark, then an exclamation mark, then an imperative marker.
func (a *Analyzer) SentenceType(text string) SentenceType {
	switch {
	case strings.Contains(text, "?"):
		return Interrogative
	case strings.Contains(text, "!"):
		return Exclamatory
	case containsAny(text, a.lex.ImperativeMarkers):
		return Imperative
	default:
		return Declarative
	}
}
